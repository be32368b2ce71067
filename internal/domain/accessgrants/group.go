package accessgrants

// GroupByWebID agrupa grants por el WebID del grantee.
// Función pura, O(n): un grupo nace en la primera aparición de un
// WebID (tomando logo/ownerName de ese grant) y los siguientes se
// appendean en orden de llegada. El orden de los grupos es el orden
// de primera aparición. Nunca produce grupos vacíos.
func GroupByWebID(grants []Grant) []Group {
	groups := make([]Group, 0, len(grants))
	index := make(map[string]int, len(grants))

	for _, g := range grants {
		if i, ok := index[g.WebID]; ok {
			groups[i].Items = append(groups[i].Items, g)
			continue
		}
		index[g.WebID] = len(groups)
		groups = append(groups, Group{
			WebID:     g.WebID,
			Logo:      g.Logo,
			OwnerName: g.OwnerName,
			Items:     []Grant{g},
		})
	}
	return groups
}
