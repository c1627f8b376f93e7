package flexbox

// Item is one entry of the declarative tree. Items are cheap values that
// callers rebuild every frame; the Scope maps them onto persistent nodes.
type Item struct {
	key      any
	style    Style
	content  Content
	children []*Item
	isolated bool
}

// New creates an Item with DefaultStyle and applies the options in order.
func New(opts ...Option) *Item {
	it := &Item{style: DefaultStyle()}
	for _, opt := range opts {
		opt(it)
	}
	return it
}

// AddChild appends children to the item.
func (it *Item) AddChild(children ...*Item) {
	it.children = append(it.children, children...)
}

// Children returns the item's children.
func (it *Item) Children() []*Item {
	return it.children
}

// Key returns the identity key, or nil for positional identity.
func (it *Item) Key() any {
	return it.key
}

// Style returns the item's layout style.
func (it *Item) Style() Style {
	return it.style
}

// Content returns the leaf content, or nil.
func (it *Item) Content() Content {
	return it.content
}

// IsIsolated reports whether the item's subtree is laid out in its own scope.
func (it *Item) IsIsolated() bool {
	return it.isolated
}

// nestedScope returns the explicit scope used as content, if any.
func (it *Item) nestedScope() *Scope {
	s, _ := it.content.(*Scope)
	return s
}

// hostsScope reports whether the item's node hosts a nested scope.
func (it *Item) hostsScope() bool {
	return it.isolated || it.nestedScope() != nil
}

// innerRoot builds the root item of an isolated item's nested scope. The
// host keeps sizing, spacing and flex-item properties; the inner root takes
// the container properties and fills whatever the host is given.
func (it *Item) innerRoot() *Item {
	s := DefaultStyle()
	s.Direction = it.style.Direction
	s.Wrap = it.style.Wrap
	s.JustifyContent = it.style.JustifyContent
	s.AlignItems = it.style.AlignItems
	s.AlignContent = it.style.AlignContent
	s.WritingDirection = it.style.WritingDirection
	s.Overflow = it.style.Overflow
	return &Item{style: s, children: it.children}
}
