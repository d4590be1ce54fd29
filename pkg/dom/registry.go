package dom

import (
	"fmt"
	"strconv"
	"strings"
)

// IDRegistry enforces document-wide identifier uniqueness and provides
// lookup. A document owns exactly one; detached subtrees have none, so
// their identifiers are neither unique nor resolvable until attached.
type IDRegistry struct {
	ids map[string]Node
}

func newIDRegistry() *IDRegistry {
	return &IDRegistry{ids: make(map[string]Node)}
}

// Lookup resolves an identifier to its node.
func (r *IDRegistry) Lookup(id string) (Node, bool) {
	n, ok := r.ids[id]
	return n, ok
}

// Len returns the number of registered identifiers.
func (r *IDRegistry) Len() int { return len(r.ids) }

// add registers id for n. On collision it fails unless force is set, in
// which case a numeric suffix is appended until the identifier is free.
// The identifier actually registered is returned.
func (r *IDRegistry) add(n Node, id string, force bool) (string, error) {
	if _, exists := r.ids[id]; exists {
		if !force {
			return "", fmt.Errorf("%w: %q", ErrDuplicateID, id)
		}
		base := id
		for i := 1; ; i++ {
			id = base + strconv.Itoa(i)
			if _, exists := r.ids[id]; !exists {
				break
			}
		}
	}
	r.ids[id] = n
	return id, nil
}

// remove drops the entry for id if it belongs to n.
func (r *IDRegistry) remove(id string, n Node) {
	if cur, ok := r.ids[id]; ok && cur == n {
		delete(r.ids, id)
	}
}

// reassign swaps a node's registration from old to id. The new identifier
// registers first so a collision leaves the old registration intact.
func (r *IDRegistry) reassign(n Node, old, id string, force bool) (string, error) {
	if id == "" {
		if old != "" {
			r.remove(old, n)
		}
		return "", nil
	}
	final, err := r.add(n, id, force)
	if err != nil {
		return "", err
	}
	if old != "" {
		r.remove(old, n)
	}
	return final, nil
}

// addSubtree registers every identifier under n. Identifiers are never
// rewritten here: any collision, including between two nodes of the
// subtree itself, rolls back the registrations made so far and fails.
func (r *IDRegistry) addSubtree(n Node) error {
	var added []string
	var failed error
	Walk(n, func(cur Node) bool {
		if failed != nil {
			return false
		}
		id := cur.Base().ID()
		if id == "" {
			return true
		}
		if _, err := r.add(cur, id, false); err != nil {
			failed = err
			return false
		}
		added = append(added, id)
		return true
	})
	if failed != nil {
		for _, id := range added {
			delete(r.ids, id)
		}
		return failed
	}
	return nil
}

// removeSubtree drops every identifier registered under n.
func (r *IDRegistry) removeSubtree(n Node) {
	Walk(n, func(cur Node) bool {
		if id := cur.Base().ID(); id != "" {
			r.remove(id, cur)
		}
		return true
	})
}

// ID returns the node's identifier, empty when unset.
func (e *Element) ID() string {
	if v, ok := e.attrs.get("id"); ok {
		if s, ok := v.(String); ok {
			return string(s)
		}
	}
	return ""
}

// SetID assigns the node's identifier. When the node belongs to a
// document, a colliding identifier fails with ErrDuplicateID and the
// current identifier is retained. An empty id clears the identifier.
func (e *Element) SetID(id string) error {
	return e.setID(id, false, nil)
}

// SetUniqueID assigns the node's identifier, rewriting it with a numeric
// suffix if it collides within the document. When a rewrite happens and
// audit is non-nil, audit receives the requested and the final
// identifier.
func (e *Element) SetUniqueID(id string, audit func(requested, actual string)) error {
	return e.setID(id, true, audit)
}

func (e *Element) setID(id string, force bool, audit func(string, string)) error {
	if err := validateID(id); err != nil {
		return err
	}
	old := e.ID()
	if id == old {
		return nil
	}
	final := id
	if doc := e.OwnerDocument(); doc != nil {
		got, err := doc.ids.reassign(e.self, old, id, force)
		if err != nil {
			return err
		}
		final = got
		if final != id && audit != nil {
			audit(id, final)
		}
	}
	if final == "" {
		e.attrs.remove("id")
		return nil
	}
	e.attrs.set("id", String(final))
	return nil
}

func validateID(id string) error {
	if id == "" {
		return nil
	}
	if strings.ContainsAny(id, " \t\n\r/") {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return nil
}
