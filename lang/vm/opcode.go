package vm

// OpCode identifies a bytecode instruction. Operands, when present, are
// encoded as fixed-width big-endian bytes immediately following the
// opcode byte; see each instruction's comment for its operand shape.
type OpCode byte

const (
	OpConstant     OpCode = iota // u8 constant index
	OpNil
	OpTrue
	OpFalse
	OpPop
	OpGetLocal     // u8 slot
	OpSetLocal     // u8 slot
	OpGetGlobal    // u8 constant index (name)
	OpDefineGlobal // u8 constant index (name)
	OpSetGlobal    // u8 constant index (name)
	OpGetUpvalue   // u8 upvalue index
	OpSetUpvalue   // u8 upvalue index
	OpGetInst      // u8 constant index (field name)
	OpSetInst      // u8 constant index (field name)
	OpEqual
	OpGreater
	OpLess
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
	OpNot
	OpNegate
	OpPrint
	OpJump         // u16 offset
	OpJumpIfFalse  // u16 offset
	OpLoop         // u16 offset
	OpCall         // u8 arg count
	OpInvoke       // u8 constant index (name), u8 arg count
	OpClosure      // u8 constant index (function), then per upvalue: u8 isLocal, u8 index
	OpCloseUpvalue
	OpReturn
	OpClass  // u8 constant index (name)
	OpMethod // u8 constant index (name)
)

var opcodeNames = [...]string{
	OpConstant:     "OP_CONSTANT",
	OpNil:          "OP_NIL",
	OpTrue:         "OP_TRUE",
	OpFalse:        "OP_FALSE",
	OpPop:          "OP_POP",
	OpGetLocal:     "OP_GET_LOCAL",
	OpSetLocal:     "OP_SET_LOCAL",
	OpGetGlobal:    "OP_GET_GLOBAL",
	OpDefineGlobal: "OP_DEFINE_GLOBAL",
	OpSetGlobal:    "OP_SET_GLOBAL",
	OpGetUpvalue:   "OP_GET_UPVALUE",
	OpSetUpvalue:   "OP_SET_UPVALUE",
	OpGetInst:      "OP_GET_INST",
	OpSetInst:      "OP_SET_INST",
	OpEqual:        "OP_EQUAL",
	OpGreater:      "OP_GREATER",
	OpLess:         "OP_LESS",
	OpAdd:          "OP_ADD",
	OpSubtract:     "OP_SUBTRACT",
	OpMultiply:     "OP_MULTIPLY",
	OpDivide:       "OP_DIVIDE",
	OpNot:          "OP_NOT",
	OpNegate:       "OP_NEGATE",
	OpPrint:        "OP_PRINT",
	OpJump:         "OP_JUMP",
	OpJumpIfFalse:  "OP_JUMP_IF_FALSE",
	OpLoop:         "OP_LOOP",
	OpCall:         "OP_CALL",
	OpInvoke:       "OP_INVOKE",
	OpClosure:      "OP_CLOSURE",
	OpCloseUpvalue: "OP_CLOSE_UPVALUE",
	OpReturn:       "OP_RETURN",
	OpClass:        "OP_CLASS",
	OpMethod:       "OP_METHOD",
}

func (op OpCode) String() string {
	if int(op) < len(opcodeNames) && opcodeNames[op] != "" {
		return opcodeNames[op]
	}
	return "OP_UNKNOWN"
}
