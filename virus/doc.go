// Package virus is the reference payload for a genealogy: an immutable
// strain record constructed from its identifier alone.
//
// virus.New satisfies genealogy.PayloadFunc[string, *virus.Virus], so a
// lineage of viruses is one call away:
//
//	g, err := genealogy.New("WILD", virus.New)
//
// NewStrainID mints globally unique identifiers for strains discovered
// without an agreed name.
package virus
