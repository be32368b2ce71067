package server

import (
	"context"
	"time"

	"github.com/google/uuid"

	"data-wallet/internal/domain/accessgrants"
	"data-wallet/internal/domain/accessrequests"
	"data-wallet/internal/server/store"
)

// Seed carga datos de ejemplo para desarrollo local: dos grantees
// (uno con dos grants, para ver la agrupación), un pedido pendiente
// y un prompt resource registrado.
func Seed(ctx context.Context, st store.Store) error {
	now := time.Now().UTC()
	exp := now.AddDate(1, 0, 0)

	grants := []accessgrants.Grant{
		{
			UUID:           uuid.NewString(),
			WebID:          "https://id.example.org/alice",
			OwnerName:      "Alice",
			Resource:       "https://storage.example.org/wallet/passport.jpg",
			ResourceName:   "passport.jpg",
			ForPurpose:     "Identity verification",
			ExpirationDate: exp,
			IssuedDate:     now,
			Modes:          []accessgrants.Mode{accessgrants.ModeRead},
		},
		{
			UUID:           uuid.NewString(),
			WebID:          "https://id.example.org/bob",
			OwnerName:      "Bob",
			Resource:       "https://storage.example.org/wallet/medical/",
			ResourceName:   "Medical",
			ForPurpose:     "Insurance claim",
			ExpirationDate: exp,
			IssuedDate:     now,
			Modes:          []accessgrants.Mode{accessgrants.ModeRead, accessgrants.ModeWrite},
		},
		{
			UUID:           uuid.NewString(),
			WebID:          "https://id.example.org/alice",
			OwnerName:      "Alice",
			Resource:       "https://storage.example.org/wallet/driver-license.pdf",
			ResourceName:   "driver-license.pdf",
			ForPurpose:     "Identity verification",
			ExpirationDate: exp,
			IssuedDate:     now,
			Modes:          []accessgrants.Mode{accessgrants.ModeRead},
		},
	}
	for _, g := range grants {
		if err := st.CreateGrant(ctx, g); err != nil {
			return err
		}
	}

	pending := accessrequests.Request{
		UUID:           uuid.NewString(),
		WebID:          "https://id.example.org/carol",
		OwnerName:      "Carol",
		Resource:       "https://storage.example.org/wallet/vaccination.ttl",
		ResourceName:   "vaccination",
		ForPurpose:     "Travel check-in",
		ExpirationDate: exp,
		IssuedDate:     now,
		IsRDFResource:  true,
		Modes:          []accessgrants.Mode{accessgrants.ModeRead},
	}
	if err := st.CreateRequest(ctx, pending); err != nil {
		return err
	}

	return st.CreatePromptResource(ctx, store.PromptResource{
		WebID:        "https://id.example.org/owner",
		Type:         "IdentityCredential",
		Resource:     "https://storage.example.org/wallet/passport.jpg",
		ResourceName: "passport.jpg",
		OwnerName:    "Wallet Owner",
	})
}
