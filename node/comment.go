package node

// Comment represents a comment node
type Comment struct {
	charData
}

func newComment(content string) *Comment {
	c := &Comment{}
	c.content = content
	return c
}

func (*Comment) Type() NodeType {
	return CommentNodeType
}

func (*Comment) Name() string {
	return "#comment"
}

func (*Comment) LocalName() string {
	return "#comment"
}

func (n *Comment) AppendChild(child Node) error {
	return appendChild(n, child)
}

func (n *Comment) InsertBefore(newChild, refChild Node) error {
	return insertBefore(n, newChild, refChild)
}

func (n *Comment) ReplaceChild(newChild, oldChild Node) error {
	return replaceChild(n, newChild, oldChild)
}

func (n *Comment) RemoveChild(child Node) error {
	return removeChild(n, child)
}

func (n *Comment) CloneNode(bool) Node {
	clone := newComment(n.content)
	clone.doc = n.doc
	return clone
}
