package negotiation

import "context"

// SwitchLinkSet is the outcome of a switch link scan: the links keyed by
// langcode and the method that provided them.
type SwitchLinkSet struct {
	Links  map[string]SwitchLink
	Method MethodID
}

// SwitchLinks scans the type's stored method order for the first method
// providing language switcher links and returns its non-empty link set.
// The same first-match-wins discipline as Resolve, over a different
// capability. Returns false when no method in the chain provides links.
func (n *Negotiator) SwitchLinks(ctx context.Context, r *Request, t TypeID, path string) (SwitchLinkSet, bool) {
	for _, id := range n.registry.MethodOrder(ctx, n.store, t) {
		d, ok := n.registry.methods[id]
		if !ok {
			continue
		}
		provider, ok := d.Method.(SwitchLinkProvider)
		if !ok {
			continue
		}
		links := provider.SwitchLinks(t, path, n.langs)
		if len(links) == 0 {
			continue
		}
		return SwitchLinkSet{Links: links, Method: id}, true
	}
	return SwitchLinkSet{}, false
}

// RewriteURL runs every URL-rewriting method of the url type's chain over
// the given path and options, in stored order. Rewrites mutate path and
// opts in place.
func (n *Negotiator) RewriteURL(ctx context.Context, path *string, opts *RewriteOptions) {
	for _, id := range n.registry.MethodOrder(ctx, n.store, TypeURL) {
		d, ok := n.registry.methods[id]
		if !ok {
			continue
		}
		if rewriter, ok := d.Method.(URLRewriter); ok {
			rewriter.RewriteURL(path, opts)
		}
	}
}
