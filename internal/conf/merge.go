package conf

// Merge layers override on top of base, returning a new table without
// mutating either. Every (key, identifier) present in override replaces
// the base value; keys only in base keep theirs. Replaced entries keep
// their base position, override-only entries are appended in their own
// order.
func Merge(base, override *Table) *Table {
	merged := &Table{
		values: make(map[Key]string, len(base.values)+len(override.values)),
		order:  make([]Key, len(base.order), len(base.order)+len(override.order)),
	}

	copy(merged.order, base.order)
	for key, value := range base.values {
		merged.values[key] = value
	}

	for _, key := range override.order {
		if _, exists := merged.values[key]; !exists {
			merged.order = append(merged.order, key)
		}
		merged.values[key] = override.values[key]
	}

	return merged
}
