package node

// ProcessingInstruction represents a processing instruction node. The
// target doubles as the node name.
type ProcessingInstruction struct {
	treeNode
	data string
}

func newProcessingInstruction(target Name, data string) *ProcessingInstruction {
	pi := &ProcessingInstruction{data: data}
	pi.name = target
	return pi
}

func (*ProcessingInstruction) Type() NodeType {
	return ProcessingInstructionNodeType
}

func (pi *ProcessingInstruction) Target() string {
	return pi.name.Local
}

func (pi *ProcessingInstruction) Data() string {
	return pi.data
}

func (pi *ProcessingInstruction) SetData(s string) error {
	return pi.SetValue(s)
}

func (pi *ProcessingInstruction) Value() string {
	return pi.data
}

func (pi *ProcessingInstruction) SetValue(s string) error {
	const op = "node.SetData"
	if pi.readonly {
		return newError(NoModificationAllowedErr, op, "node is read-only")
	}
	if !pi.beginEdit() {
		return newError(InvalidStateErr, op, "node is being mutated")
	}
	defer pi.endEdit()
	pi.data = s
	return nil
}

func (pi *ProcessingInstruction) Content(dst []byte) ([]byte, error) {
	return append(dst, pi.data...), nil
}

func (pi *ProcessingInstruction) AppendChild(child Node) error {
	return appendChild(pi, child)
}

func (pi *ProcessingInstruction) InsertBefore(newChild, refChild Node) error {
	return insertBefore(pi, newChild, refChild)
}

func (pi *ProcessingInstruction) ReplaceChild(newChild, oldChild Node) error {
	return replaceChild(pi, newChild, oldChild)
}

func (pi *ProcessingInstruction) RemoveChild(child Node) error {
	return removeChild(pi, child)
}

func (pi *ProcessingInstruction) CloneNode(bool) Node {
	clone := newProcessingInstruction(pi.name, pi.data)
	clone.doc = pi.doc
	return clone
}
