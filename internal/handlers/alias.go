package handlers

// ResolveAlias maps rawType to the canonical type named in aliases.
// Types that are not aliased pass through unchanged.
func ResolveAlias(rawType string, aliases map[string]string) string {
	if canonical, ok := aliases[rawType]; ok {
		return canonical
	}
	return rawType
}
