package papertrade

// Registry owns the identity -> *Ledger mapping for a process.
//
// Switching identity is "fetch or create a different ledger", never an
// in-place mutation of a shared instance, and it is what keeps each
// identity's record single-writer within the process.
type Registry struct {
	store   *Store
	ledgers map[string]*Ledger
}

// NewRegistry creates a registry backed by store.
func NewRegistry(store *Store) *Registry {
	return &Registry{
		store:   store,
		ledgers: make(map[string]*Ledger),
	}
}

// Ledger returns the ledger for identity, constructing it on first use with
// Open semantics: persisted state wins over initialCash, and a corrupt
// record falls back to a fresh ledger with the *CorruptStateError returned
// alongside the usable ledger.
func (r *Registry) Ledger(identity string, initialCash Money) (*Ledger, error) {
	if l, ok := r.ledgers[identity]; ok {
		return l, nil
	}
	l, err := Open(r.store, identity, initialCash)
	r.ledgers[identity] = l
	return l, err
}

// Forget drops the cached ledger for identity. The persisted record is
// untouched; the next Ledger call reloads it.
func (r *Registry) Forget(identity string) {
	delete(r.ledgers, identity)
}
