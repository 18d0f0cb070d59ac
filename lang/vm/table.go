package vm

const tableMaxLoad = 0.75

type entry struct {
	key   *String // nil means the slot was never used
	value Value   // tombstone: key nil, value Bool(true)
}

// Table is an open-addressed hash table keyed by interned strings, using
// linear probing and tombstones so deletions don't break probe sequences.
type Table struct {
	count   int // live entries plus tombstones
	entries []entry
}

func NewTable() *Table {
	return &Table{}
}

func growCapacity(cap int) int {
	if cap < 8 {
		return 8
	}
	return cap * 2
}

func findEntry(entries []entry, key *String) *entry {
	idx := key.hash % uint32(len(entries))
	var tombstone *entry
	for {
		e := &entries[idx]
		if e.key == nil {
			if e.value == nil {
				if tombstone != nil {
					return tombstone
				}
				return e
			}
			if tombstone == nil {
				tombstone = e
			}
		} else if e.key == key {
			return e
		}
		idx = (idx + 1) % uint32(len(entries))
	}
}

func (t *Table) adjustCapacity(capacity int) {
	entries := make([]entry, capacity)
	t.count = 0
	for _, e := range t.entries {
		if e.key == nil {
			continue
		}
		dest := findEntry(entries, e.key)
		dest.key = e.key
		dest.value = e.value
		t.count++
	}
	t.entries = entries
}

// Set stores value under key, growing the table first if needed. It
// reports whether key was not already present.
func (t *Table) Set(key *String, value Value) bool {
	if float64(t.count+1) > float64(len(t.entries))*tableMaxLoad {
		t.adjustCapacity(growCapacity(len(t.entries)))
	}
	e := findEntry(t.entries, key)
	isNewKey := e.key == nil
	if isNewKey && e.value == nil {
		t.count++
	}
	e.key = key
	e.value = value
	return isNewKey
}

// Get looks up key, returning ok=false if absent.
func (t *Table) Get(key *String) (Value, bool) {
	if len(t.entries) == 0 {
		return nil, false
	}
	e := findEntry(t.entries, key)
	if e.key == nil {
		return nil, false
	}
	return e.value, true
}

// Delete removes key, leaving a tombstone in its slot.
func (t *Table) Delete(key *String) bool {
	if len(t.entries) == 0 {
		return false
	}
	e := findEntry(t.entries, key)
	if e.key == nil {
		return false
	}
	e.key = nil
	e.value = Bool(true)
	return true
}

// AddAll copies every entry of from into t.
func (t *Table) AddAll(from *Table) {
	for _, e := range from.entries {
		if e.key != nil {
			t.Set(e.key, e.value)
		}
	}
}

// FindString looks up an interned string by content without allocating a
// String to compare against, the entry point string interning relies on.
func (t *Table) FindString(s string, hash uint32) *String {
	if len(t.entries) == 0 {
		return nil
	}
	idx := hash % uint32(len(t.entries))
	for {
		e := &t.entries[idx]
		if e.key == nil {
			if e.value == nil {
				return nil
			}
		} else if e.key.hash == hash && e.key.chars == s {
			return e.key
		}
		idx = (idx + 1) % uint32(len(t.entries))
	}
}

func (t *Table) markEntries(gc *gc) {
	for _, e := range t.entries {
		if e.key != nil {
			gc.markObject(e.key)
			gc.markValue(e.value)
		}
	}
}

// removeWhite deletes every entry whose key wasn't marked during the
// preceding trace, the weak-table cleanup the string intern table needs
// between tracing and sweeping so garbage strings don't stay interned
// forever.
func (t *Table) removeWhite() {
	for i := range t.entries {
		e := &t.entries[i]
		if e.key != nil && !e.key.marked {
			e.key = nil
			e.value = Bool(true)
		}
	}
}
