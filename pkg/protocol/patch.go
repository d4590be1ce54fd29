package protocol

import "errors"

// NodePath addresses a node by child indexes walked from the document
// root. The empty path is the root itself. Index paths survive on the
// viewer side without an identifier table and stay valid as long as
// patches are applied in sequence order.
type NodePath []uint32

// Equal reports whether two paths address the same position.
func (p NodePath) Equal(q NodePath) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// Child returns the path extended by one child index.
func (p NodePath) Child(i uint32) NodePath {
	child := make(NodePath, len(p)+1)
	copy(child, p)
	child[len(p)] = i
	return child
}

// PatchOp is the kind of document mutation a patch carries.
type PatchOp uint8

const (
	PatchSetAttr    PatchOp = 0x01 // set attribute Name to Value
	PatchRemoveAttr PatchOp = 0x02 // remove attribute Name
	PatchSetContent PatchOp = 0x03 // replace text content with Value
	PatchInsertNode PatchOp = 0x04 // insert Markup under Path at Index
	PatchRemoveNode PatchOp = 0x05 // remove the child of Path at Index
)

func (op PatchOp) String() string {
	switch op {
	case PatchSetAttr:
		return "SetAttr"
	case PatchRemoveAttr:
		return "RemoveAttr"
	case PatchSetContent:
		return "SetContent"
	case PatchInsertNode:
		return "InsertNode"
	case PatchRemoveNode:
		return "RemoveNode"
	default:
		return "Unknown"
	}
}

// Patch is one document mutation. For SetAttr, RemoveAttr and
// SetContent the path addresses the mutated node; for InsertNode and
// RemoveNode it addresses the parent and Index the child position.
// Markup carries the inserted subtree in serialized form.
type Patch struct {
	Op     PatchOp
	Path   NodePath
	Name   string
	Value  string
	Index  uint32
	Markup string
}

// PatchFrame is an ordered batch of patches under one sequence number.
type PatchFrame struct {
	Seq     uint64
	Patches []Patch
}

var ErrInvalidPatchOp = errors.New("protocol: invalid patch op")

// NewSetAttrPatch builds a SetAttr patch.
func NewSetAttrPatch(path NodePath, name, value string) Patch {
	return Patch{Op: PatchSetAttr, Path: path, Name: name, Value: value}
}

// NewRemoveAttrPatch builds a RemoveAttr patch.
func NewRemoveAttrPatch(path NodePath, name string) Patch {
	return Patch{Op: PatchRemoveAttr, Path: path, Name: name}
}

// NewSetContentPatch builds a SetContent patch.
func NewSetContentPatch(path NodePath, content string) Patch {
	return Patch{Op: PatchSetContent, Path: path, Value: content}
}

// NewInsertNodePatch builds an InsertNode patch.
func NewInsertNodePatch(parent NodePath, index uint32, markup string) Patch {
	return Patch{Op: PatchInsertNode, Path: parent, Index: index, Markup: markup}
}

// NewRemoveNodePatch builds a RemoveNode patch.
func NewRemoveNodePatch(parent NodePath, index uint32) Patch {
	return Patch{Op: PatchRemoveNode, Path: parent, Index: index}
}

// EncodePatches encodes a patch frame to bytes.
func EncodePatches(pf *PatchFrame) []byte {
	e := NewEncoder()
	EncodePatchesTo(e, pf)
	return e.Bytes()
}

// EncodePatchesTo encodes a patch frame using the provided encoder.
func EncodePatchesTo(e *Encoder, pf *PatchFrame) {
	e.WriteUvarint(pf.Seq)
	e.WriteUvarint(uint64(len(pf.Patches)))
	for i := range pf.Patches {
		encodePatch(e, &pf.Patches[i])
	}
}

func encodePath(e *Encoder, p NodePath) {
	e.WriteUvarint(uint64(len(p)))
	for _, idx := range p {
		e.WriteUvarint(uint64(idx))
	}
}

func encodePatch(e *Encoder, p *Patch) {
	e.WriteByte(byte(p.Op))
	encodePath(e, p.Path)

	switch p.Op {
	case PatchSetAttr:
		e.WriteString(p.Name)
		e.WriteString(p.Value)
	case PatchRemoveAttr:
		e.WriteString(p.Name)
	case PatchSetContent:
		e.WriteString(p.Value)
	case PatchInsertNode:
		e.WriteUvarint(uint64(p.Index))
		e.WriteString(p.Markup)
	case PatchRemoveNode:
		e.WriteUvarint(uint64(p.Index))
	}
}

// DecodePatches decodes a patch frame from bytes.
func DecodePatches(data []byte) (*PatchFrame, error) {
	d := NewDecoder(data)
	return DecodePatchesFrom(d)
}

// DecodePatchesFrom decodes a patch frame from a decoder.
func DecodePatchesFrom(d *Decoder) (*PatchFrame, error) {
	seq, err := d.ReadUvarint()
	if err != nil {
		return nil, err
	}
	count, err := d.ReadCollectionCount()
	if err != nil {
		return nil, err
	}
	patches := make([]Patch, count)
	for i := range patches {
		if err := decodePatch(d, &patches[i]); err != nil {
			return nil, err
		}
	}
	return &PatchFrame{Seq: seq, Patches: patches}, nil
}

func decodePath(d *Decoder) (NodePath, error) {
	count, err := d.ReadCollectionCount()
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}
	p := make(NodePath, count)
	for i := range p {
		idx, err := d.ReadUvarint()
		if err != nil {
			return nil, err
		}
		p[i] = uint32(idx)
	}
	return p, nil
}

func decodePatch(d *Decoder, p *Patch) error {
	opByte, err := d.ReadByte()
	if err != nil {
		return err
	}
	p.Op = PatchOp(opByte)
	if p.Path, err = decodePath(d); err != nil {
		return err
	}

	switch p.Op {
	case PatchSetAttr:
		if p.Name, err = d.ReadString(); err != nil {
			return err
		}
		p.Value, err = d.ReadString()
	case PatchRemoveAttr:
		p.Name, err = d.ReadString()
	case PatchSetContent:
		p.Value, err = d.ReadString()
	case PatchInsertNode:
		var idx uint64
		if idx, err = d.ReadUvarint(); err != nil {
			return err
		}
		p.Index = uint32(idx)
		p.Markup, err = d.ReadString()
	case PatchRemoveNode:
		var idx uint64
		idx, err = d.ReadUvarint()
		p.Index = uint32(idx)
	default:
		return ErrInvalidPatchOp
	}
	return err
}
