package node

import "unicode/utf8"

// charData is the shared payload of Text, Comment and CDATASection
// nodes. Offsets and counts are expressed in runes so that multi-byte
// content behaves the same as ASCII.
type charData struct {
	treeNode
	content string
}

func (n *charData) Data() string {
	return n.content
}

func (n *charData) SetData(s string) error {
	const op = "node.SetData"
	if n.readonly {
		return newError(NoModificationAllowedErr, op, "node is read-only")
	}
	if !n.beginEdit() {
		return newError(InvalidStateErr, op, "node is being mutated")
	}
	defer n.endEdit()
	n.content = s
	return nil
}

func (n *charData) Length() int {
	return utf8.RuneCountInString(n.content)
}

func (n *charData) checkRange(offset, count int, op string) ([]rune, error) {
	runes := []rune(n.content)
	if offset < 0 || offset > len(runes) {
		return nil, newError(IndexSizeErr, op, "offset out of range")
	}
	if count < 0 {
		return nil, newError(IndexSizeErr, op, "negative count")
	}
	return runes, nil
}

// SubstringData returns count runes starting at offset. A count past
// the end of the data is clamped.
func (n *charData) SubstringData(offset, count int) (string, error) {
	runes, err := n.checkRange(offset, count, "node.SubstringData")
	if err != nil {
		return "", err
	}
	end := offset + count
	if end > len(runes) {
		end = len(runes)
	}
	return string(runes[offset:end]), nil
}

func (n *charData) AppendData(s string) error {
	const op = "node.AppendData"
	if n.readonly {
		return newError(NoModificationAllowedErr, op, "node is read-only")
	}
	if !n.beginEdit() {
		return newError(InvalidStateErr, op, "node is being mutated")
	}
	defer n.endEdit()
	n.content += s
	return nil
}

func (n *charData) InsertData(offset int, s string) error {
	const op = "node.InsertData"
	if n.readonly {
		return newError(NoModificationAllowedErr, op, "node is read-only")
	}
	if !n.beginEdit() {
		return newError(InvalidStateErr, op, "node is being mutated")
	}
	defer n.endEdit()

	runes, err := n.checkRange(offset, 0, op)
	if err != nil {
		return err
	}
	n.content = string(runes[:offset]) + s + string(runes[offset:])
	return nil
}

// DeleteData removes count runes starting at offset. A count past the
// end of the data is clamped.
func (n *charData) DeleteData(offset, count int) error {
	const op = "node.DeleteData"
	if n.readonly {
		return newError(NoModificationAllowedErr, op, "node is read-only")
	}
	if !n.beginEdit() {
		return newError(InvalidStateErr, op, "node is being mutated")
	}
	defer n.endEdit()

	runes, err := n.checkRange(offset, count, op)
	if err != nil {
		return err
	}
	end := offset + count
	if end > len(runes) {
		end = len(runes)
	}
	n.content = string(runes[:offset]) + string(runes[end:])
	return nil
}

func (n *charData) ReplaceData(offset, count int, s string) error {
	const op = "node.ReplaceData"
	if n.readonly {
		return newError(NoModificationAllowedErr, op, "node is read-only")
	}
	if !n.beginEdit() {
		return newError(InvalidStateErr, op, "node is being mutated")
	}
	defer n.endEdit()

	runes, err := n.checkRange(offset, count, op)
	if err != nil {
		return err
	}
	end := offset + count
	if end > len(runes) {
		end = len(runes)
	}
	n.content = string(runes[:offset]) + s + string(runes[end:])
	return nil
}

func (n *charData) Value() string {
	return n.content
}

func (n *charData) SetValue(s string) error {
	return n.SetData(s)
}

func (n *charData) Content(dst []byte) ([]byte, error) {
	return append(dst, n.content...), nil
}
