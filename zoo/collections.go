package zoo

// Collection is an interface; classes embedding it do not extend it.
type Collection interface {
	Size() int
}

type AbstractCollection struct{}

type ArrayList struct {
	AbstractCollection
	Items []string
}

func (l *ArrayList) Size() int { return len(l.Items) }

// View wraps another collection. Its only embedded field is an interface,
// so View is a root class.
type View struct {
	Collection
	Name string
}
