package toml

import "github.com/pkg/errors"

// ParseBaseAndOverride parses basePath and overridePath and merges the
// override document onto the base document, returning the merged tree.
// Merge is a recursive table walk: tables merge key-by-key, and every
// other kind (scalar, array, table array) from override replaces the
// base value outright — arrays are never merged element-wise. A key that
// is a table in one document and not in the other is an ErrMergeConflict.
//
// When allowAdditions is false, any key present in override but absent
// from the corresponding base table is an ErrMergeConflict rather than a
// silently accepted addition: a config-merging tool that's told
// additions aren't allowed should fail loudly on one, not apply a
// partial merge the caller didn't ask for.
func ParseBaseAndOverride(basePath, overridePath string, allowAdditions bool) (*Table, error) {
	base, err := ParseFile(basePath)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing base %s", basePath)
	}
	override, err := ParseFile(overridePath)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing override %s", overridePath)
	}
	if err := mergeTable(base, override, allowAdditions, nil); err != nil {
		return nil, err
	}
	return base, nil
}

func mergeTable(base, override *Table, allowAdditions bool, path []string) error {
	var keys []string
	override.Range(func(k string, _ Node) bool {
		keys = append(keys, k)
		return true
	})
	for _, k := range keys {
		overrideVal, _ := override.Get(k)
		childPath := append(append([]string{}, path...), k)

		baseVal, err := base.Get(k)
		if err != nil {
			if !allowAdditions {
				return wrapParseError(0, ErrMergeConflict, "key %q not present in base document", dottedJoin(childPath))
			}
			base.Insert(k, overrideVal)
			continue
		}

		baseSub, baseIsTable := baseVal.(*Table)
		overrideSub, overrideIsTable := overrideVal.(*Table)
		if baseIsTable && overrideIsTable {
			if err := mergeTable(baseSub, overrideSub, allowAdditions, childPath); err != nil {
				return err
			}
			continue
		}
		if baseIsTable != overrideIsTable {
			return wrapParseError(0, ErrMergeConflict, "key %q is a table in one document and not the other", dottedJoin(childPath))
		}

		base.Insert(k, overrideVal)
	}
	return nil
}
