package blueprint

import "strconv"

// NodeType selects the behaviour of a node.
type NodeType uint8

const (
	NodeTypeKeyPress   NodeType = 0
	NodeTypeKeyRelease NodeType = 1
	NodeTypeString     NodeType = 2
	NodeTypePrint      NodeType = 3
)

var EnumNamesNodeType = map[NodeType]string{
	NodeTypeKeyPress:   "KeyPress",
	NodeTypeKeyRelease: "KeyRelease",
	NodeTypeString:     "String",
	NodeTypePrint:      "Print",
}

func (v NodeType) String() string {
	if s, ok := EnumNamesNodeType[v]; ok {
		return s
	}
	return "NodeType(" + strconv.FormatInt(int64(v), 10) + ")"
}

// PinType is the kind of value a pin carries.
type PinType uint8

const (
	PinTypeFlow     PinType = 0
	PinTypeBool     PinType = 1
	PinTypeInt      PinType = 2
	PinTypeFloat    PinType = 3
	PinTypeString   PinType = 4
	PinTypeObject   PinType = 5
	PinTypeFunction PinType = 6
	PinTypeDelegate PinType = 7
)

var EnumNamesPinType = map[PinType]string{
	PinTypeFlow:     "Flow",
	PinTypeBool:     "Bool",
	PinTypeInt:      "Int",
	PinTypeFloat:    "Float",
	PinTypeString:   "String",
	PinTypeObject:   "Object",
	PinTypeFunction: "Function",
	PinTypeDelegate: "Delegate",
}

func (v PinType) String() string {
	if s, ok := EnumNamesPinType[v]; ok {
		return s
	}
	return "PinType(" + strconv.FormatInt(int64(v), 10) + ")"
}

// PinSubType narrows PinTypeObject pins.
type PinSubType uint8

const (
	PinSubTypeNone        PinSubType = 0
	PinSubTypeActor       PinSubType = 1
	PinSubTypeLight       PinSubType = 2
	PinSubTypeCamera      PinSubType = 3
	PinSubTypeAnimation   PinSubType = 4
	PinSubTypeSequence    PinSubType = 5
	PinSubTypeComposition PinSubType = 6
)

var EnumNamesPinSubType = map[PinSubType]string{
	PinSubTypeNone:        "None",
	PinSubTypeActor:       "Actor",
	PinSubTypeLight:       "Light",
	PinSubTypeCamera:      "Camera",
	PinSubTypeAnimation:   "Animation",
	PinSubTypeSequence:    "Sequence",
	PinSubTypeComposition: "Composition",
}

func (v PinSubType) String() string {
	if s, ok := EnumNamesPinSubType[v]; ok {
		return s
	}
	return "PinSubType(" + strconv.FormatInt(int64(v), 10) + ")"
}

type PinKind uint8

const (
	PinKindOutput PinKind = 0
	PinKindInput  PinKind = 1
)

var EnumNamesPinKind = map[PinKind]string{
	PinKindOutput: "Output",
	PinKindInput:  "Input",
}

func (v PinKind) String() string {
	if s, ok := EnumNamesPinKind[v]; ok {
		return s
	}
	return "PinKind(" + strconv.FormatInt(int64(v), 10) + ")"
}
