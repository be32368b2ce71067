package accessgrants

import "testing"

func grantFor(uuid, webID string) Grant {
	return Grant{
		UUID:      uuid,
		WebID:     webID,
		Logo:      "logo-" + webID,
		OwnerName: "owner-" + webID,
	}
}

func TestGroupByWebID_PartitionsByGrantee(t *testing.T) {
	g1 := grantFor("g1", "https://a.example")
	g2 := grantFor("g2", "https://b.example")
	g3 := grantFor("g3", "https://a.example")

	groups := GroupByWebID([]Grant{g1, g2, g3})

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}

	// Primer aparición manda: a.example antes que b.example.
	if groups[0].WebID != "https://a.example" || groups[1].WebID != "https://b.example" {
		t.Fatalf("unexpected group order: %s, %s", groups[0].WebID, groups[1].WebID)
	}

	if len(groups[0].Items) != 2 || groups[0].Items[0].UUID != "g1" || groups[0].Items[1].UUID != "g3" {
		t.Fatalf("unexpected items for first group: %#v", groups[0].Items)
	}
	if len(groups[1].Items) != 1 || groups[1].Items[0].UUID != "g2" {
		t.Fatalf("unexpected items for second group: %#v", groups[1].Items)
	}
}

func TestGroupByWebID_HeaderComesFromFirstGrant(t *testing.T) {
	first := grantFor("g1", "https://a.example")
	second := grantFor("g2", "https://a.example")
	second.Logo = "otro-logo"
	second.OwnerName = "otro-nombre"

	groups := GroupByWebID([]Grant{first, second})

	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	if groups[0].Logo != first.Logo || groups[0].OwnerName != first.OwnerName {
		t.Fatalf("expected header from first grant, got %#v", groups[0])
	}
}

func TestGroupByWebID_EmptyInput(t *testing.T) {
	groups := GroupByWebID(nil)
	if len(groups) != 0 {
		t.Fatalf("expected no groups, got %d", len(groups))
	}

	groups = GroupByWebID([]Grant{})
	if len(groups) != 0 {
		t.Fatalf("expected no groups, got %d", len(groups))
	}
}

func TestGroupByWebID_IsPure(t *testing.T) {
	input := []Grant{
		grantFor("g1", "https://a.example"),
		grantFor("g2", "https://b.example"),
	}

	first := GroupByWebID(input)
	second := GroupByWebID(input)

	if len(first) != len(second) {
		t.Fatalf("expected stable output, got %d vs %d groups", len(first), len(second))
	}
	for i := range first {
		if first[i].WebID != second[i].WebID || len(first[i].Items) != len(second[i].Items) {
			t.Fatalf("expected identical grouping on re-run")
		}
	}
	if input[0].UUID != "g1" || input[1].UUID != "g2" {
		t.Fatalf("input slice was mutated: %#v", input)
	}
}
