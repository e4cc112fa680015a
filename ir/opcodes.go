package ir

import "github.com/wippyai/wasmarin/wasm"

// Canonical instruction set. OpCode values are dense and may be reordered
// between releases; persist mnemonics instead.
const (
	// Core opcodes.
	OpUnreachable OpCode = iota
	OpNop
	OpBlock
	OpLoop
	OpIf
	OpElse
	OpTry
	OpCatch
	OpThrow
	OpRethrow
	OpThrowRef
	OpEnd
	OpBr
	OpBrIf
	OpBrTable
	OpReturn
	OpCall
	OpCallIndirect
	OpReturnCall
	OpReturnCallIndirect
	OpCallRef
	OpReturnCallRef
	OpDelegate
	OpCatchAll
	OpDrop
	OpSelect
	OpSelectT
	OpTryTable
	OpLocalGet
	OpLocalSet
	OpLocalTee
	OpGlobalGet
	OpGlobalSet
	OpTableGet
	OpTableSet
	OpI32Load
	OpI64Load
	OpF32Load
	OpF64Load
	OpI32Load8S
	OpI32Load8U
	OpI32Load16S
	OpI32Load16U
	OpI64Load8S
	OpI64Load8U
	OpI64Load16S
	OpI64Load16U
	OpI64Load32S
	OpI64Load32U
	OpI32Store
	OpI64Store
	OpF32Store
	OpF64Store
	OpI32Store8
	OpI32Store16
	OpI64Store8
	OpI64Store16
	OpI64Store32
	OpMemorySize
	OpMemoryGrow
	OpI32Const
	OpI64Const
	OpF32Const
	OpF64Const
	OpI32Eqz
	OpI32Eq
	OpI32Ne
	OpI32LtS
	OpI32LtU
	OpI32GtS
	OpI32GtU
	OpI32LeS
	OpI32LeU
	OpI32GeS
	OpI32GeU
	OpI64Eqz
	OpI64Eq
	OpI64Ne
	OpI64LtS
	OpI64LtU
	OpI64GtS
	OpI64GtU
	OpI64LeS
	OpI64LeU
	OpI64GeS
	OpI64GeU
	OpF32Eq
	OpF32Ne
	OpF32Lt
	OpF32Gt
	OpF32Le
	OpF32Ge
	OpF64Eq
	OpF64Ne
	OpF64Lt
	OpF64Gt
	OpF64Le
	OpF64Ge
	OpI32Clz
	OpI32Ctz
	OpI32Popcnt
	OpI32Add
	OpI32Sub
	OpI32Mul
	OpI32DivS
	OpI32DivU
	OpI32RemS
	OpI32RemU
	OpI32And
	OpI32Or
	OpI32Xor
	OpI32Shl
	OpI32ShrS
	OpI32ShrU
	OpI32Rotl
	OpI32Rotr
	OpI64Clz
	OpI64Ctz
	OpI64Popcnt
	OpI64Add
	OpI64Sub
	OpI64Mul
	OpI64DivS
	OpI64DivU
	OpI64RemS
	OpI64RemU
	OpI64And
	OpI64Or
	OpI64Xor
	OpI64Shl
	OpI64ShrS
	OpI64ShrU
	OpI64Rotl
	OpI64Rotr
	OpF32Abs
	OpF32Neg
	OpF32Ceil
	OpF32Floor
	OpF32Trunc
	OpF32Nearest
	OpF32Sqrt
	OpF32Add
	OpF32Sub
	OpF32Mul
	OpF32Div
	OpF32Min
	OpF32Max
	OpF32Copysign
	OpF64Abs
	OpF64Neg
	OpF64Ceil
	OpF64Floor
	OpF64Trunc
	OpF64Nearest
	OpF64Sqrt
	OpF64Add
	OpF64Sub
	OpF64Mul
	OpF64Div
	OpF64Min
	OpF64Max
	OpF64Copysign
	OpI32WrapI64
	OpI32TruncF32S
	OpI32TruncF32U
	OpI32TruncF64S
	OpI32TruncF64U
	OpI64ExtendI32S
	OpI64ExtendI32U
	OpI64TruncF32S
	OpI64TruncF32U
	OpI64TruncF64S
	OpI64TruncF64U
	OpF32ConvertI32S
	OpF32ConvertI32U
	OpF32ConvertI64S
	OpF32ConvertI64U
	OpF32DemoteF64
	OpF64ConvertI32S
	OpF64ConvertI32U
	OpF64ConvertI64S
	OpF64ConvertI64U
	OpF64PromoteF32
	OpI32ReinterpretF32
	OpI64ReinterpretF64
	OpF32ReinterpretI32
	OpF64ReinterpretI64
	OpI32Extend8S
	OpI32Extend16S
	OpI64Extend8S
	OpI64Extend16S
	OpI64Extend32S
	OpRefNull
	OpRefIsNull
	OpRefFunc
	OpRefEq
	OpRefAsNonNull
	OpBrOnNull
	OpBrOnNonNull

	// GC opcodes, prefix 0xFB.
	OpStructNew
	OpStructNewDefault
	OpStructGet
	OpStructGetS
	OpStructGetU
	OpStructSet
	OpArrayNew
	OpArrayNewDefault
	OpArrayNewFixed
	OpArrayNewData
	OpArrayNewElem
	OpArrayGet
	OpArrayGetS
	OpArrayGetU
	OpArraySet
	OpArrayLen
	OpArrayFill
	OpArrayCopy
	OpArrayInitData
	OpArrayInitElem
	OpRefTest
	OpRefTestNull
	OpRefCast
	OpRefCastNull
	OpBrOnCast
	OpBrOnCastFail
	OpAnyConvertExtern
	OpExternConvertAny
	OpRefI31
	OpI31GetS
	OpI31GetU

	// Saturating truncation, bulk memory and table opcodes, prefix 0xFC.
	OpI32TruncSatF32S
	OpI32TruncSatF32U
	OpI32TruncSatF64S
	OpI32TruncSatF64U
	OpI64TruncSatF32S
	OpI64TruncSatF32U
	OpI64TruncSatF64S
	OpI64TruncSatF64U
	OpMemoryInit
	OpDataDrop
	OpMemoryCopy
	OpMemoryFill
	OpTableInit
	OpElemDrop
	OpTableCopy
	OpTableGrow
	OpTableSize
	OpTableFill
	OpMemoryDiscard

	// SIMD and relaxed SIMD opcodes, prefix 0xFD.
	OpV128Load
	OpV128Load8x8S
	OpV128Load8x8U
	OpV128Load16x4S
	OpV128Load16x4U
	OpV128Load32x2S
	OpV128Load32x2U
	OpV128Load8Splat
	OpV128Load16Splat
	OpV128Load32Splat
	OpV128Load64Splat
	OpV128Store
	OpV128Const
	OpI8x16Shuffle
	OpI8x16Swizzle
	OpI8x16Splat
	OpI16x8Splat
	OpI32x4Splat
	OpI64x2Splat
	OpF32x4Splat
	OpF64x2Splat
	OpI8x16ExtractLaneS
	OpI8x16ExtractLaneU
	OpI8x16ReplaceLane
	OpI16x8ExtractLaneS
	OpI16x8ExtractLaneU
	OpI16x8ReplaceLane
	OpI32x4ExtractLane
	OpI32x4ReplaceLane
	OpI64x2ExtractLane
	OpI64x2ReplaceLane
	OpF32x4ExtractLane
	OpF32x4ReplaceLane
	OpF64x2ExtractLane
	OpF64x2ReplaceLane
	OpI8x16Eq
	OpI8x16Ne
	OpI8x16LtS
	OpI8x16LtU
	OpI8x16GtS
	OpI8x16GtU
	OpI8x16LeS
	OpI8x16LeU
	OpI8x16GeS
	OpI8x16GeU
	OpI16x8Eq
	OpI16x8Ne
	OpI16x8LtS
	OpI16x8LtU
	OpI16x8GtS
	OpI16x8GtU
	OpI16x8LeS
	OpI16x8LeU
	OpI16x8GeS
	OpI16x8GeU
	OpI32x4Eq
	OpI32x4Ne
	OpI32x4LtS
	OpI32x4LtU
	OpI32x4GtS
	OpI32x4GtU
	OpI32x4LeS
	OpI32x4LeU
	OpI32x4GeS
	OpI32x4GeU
	OpF32x4Eq
	OpF32x4Ne
	OpF32x4Lt
	OpF32x4Gt
	OpF32x4Le
	OpF32x4Ge
	OpF64x2Eq
	OpF64x2Ne
	OpF64x2Lt
	OpF64x2Gt
	OpF64x2Le
	OpF64x2Ge
	OpV128Not
	OpV128And
	OpV128Andnot
	OpV128Or
	OpV128Xor
	OpV128Bitselect
	OpV128AnyTrue
	OpV128Load8Lane
	OpV128Load16Lane
	OpV128Load32Lane
	OpV128Load64Lane
	OpV128Store8Lane
	OpV128Store16Lane
	OpV128Store32Lane
	OpV128Store64Lane
	OpV128Load32Zero
	OpV128Load64Zero
	OpF32x4DemoteF64x2Zero
	OpF64x2PromoteLowF32x4
	OpI8x16Abs
	OpI8x16Neg
	OpI8x16Popcnt
	OpI8x16AllTrue
	OpI8x16Bitmask
	OpI8x16NarrowI16x8S
	OpI8x16NarrowI16x8U
	OpF32x4Ceil
	OpF32x4Floor
	OpF32x4Trunc
	OpF32x4Nearest
	OpI8x16Shl
	OpI8x16ShrS
	OpI8x16ShrU
	OpI8x16Add
	OpI8x16AddSatS
	OpI8x16AddSatU
	OpI8x16Sub
	OpI8x16SubSatS
	OpI8x16SubSatU
	OpF64x2Ceil
	OpF64x2Floor
	OpI8x16MinS
	OpI8x16MinU
	OpI8x16MaxS
	OpI8x16MaxU
	OpF64x2Trunc
	OpI8x16AvgrU
	OpI16x8ExtaddPairwiseI8x16S
	OpI16x8ExtaddPairwiseI8x16U
	OpI32x4ExtaddPairwiseI16x8S
	OpI32x4ExtaddPairwiseI16x8U
	OpI16x8Abs
	OpI16x8Neg
	OpI16x8Q15mulrSatS
	OpI16x8AllTrue
	OpI16x8Bitmask
	OpI16x8NarrowI32x4S
	OpI16x8NarrowI32x4U
	OpI16x8ExtendLowI8x16S
	OpI16x8ExtendHighI8x16S
	OpI16x8ExtendLowI8x16U
	OpI16x8ExtendHighI8x16U
	OpI16x8Shl
	OpI16x8ShrS
	OpI16x8ShrU
	OpI16x8Add
	OpI16x8AddSatS
	OpI16x8AddSatU
	OpI16x8Sub
	OpI16x8SubSatS
	OpI16x8SubSatU
	OpF64x2Nearest
	OpI16x8Mul
	OpI16x8MinS
	OpI16x8MinU
	OpI16x8MaxS
	OpI16x8MaxU
	OpI16x8AvgrU
	OpI16x8ExtmulLowI8x16S
	OpI16x8ExtmulHighI8x16S
	OpI16x8ExtmulLowI8x16U
	OpI16x8ExtmulHighI8x16U
	OpI32x4Abs
	OpI32x4Neg
	OpI32x4AllTrue
	OpI32x4Bitmask
	OpI32x4ExtendLowI16x8S
	OpI32x4ExtendHighI16x8S
	OpI32x4ExtendLowI16x8U
	OpI32x4ExtendHighI16x8U
	OpI32x4Shl
	OpI32x4ShrS
	OpI32x4ShrU
	OpI32x4Add
	OpI32x4Sub
	OpI32x4Mul
	OpI32x4MinS
	OpI32x4MinU
	OpI32x4MaxS
	OpI32x4MaxU
	OpI32x4DotI16x8S
	OpI32x4ExtmulLowI16x8S
	OpI32x4ExtmulHighI16x8S
	OpI32x4ExtmulLowI16x8U
	OpI32x4ExtmulHighI16x8U
	OpI64x2Abs
	OpI64x2Neg
	OpI64x2AllTrue
	OpI64x2Bitmask
	OpI64x2ExtendLowI32x4S
	OpI64x2ExtendHighI32x4S
	OpI64x2ExtendLowI32x4U
	OpI64x2ExtendHighI32x4U
	OpI64x2Shl
	OpI64x2ShrS
	OpI64x2ShrU
	OpI64x2Add
	OpI64x2Sub
	OpI64x2Mul
	OpI64x2Eq
	OpI64x2Ne
	OpI64x2LtS
	OpI64x2GtS
	OpI64x2LeS
	OpI64x2GeS
	OpI64x2ExtmulLowI32x4S
	OpI64x2ExtmulHighI32x4S
	OpI64x2ExtmulLowI32x4U
	OpI64x2ExtmulHighI32x4U
	OpF32x4Abs
	OpF32x4Neg
	OpF32x4Sqrt
	OpF32x4Add
	OpF32x4Sub
	OpF32x4Mul
	OpF32x4Div
	OpF32x4Min
	OpF32x4Max
	OpF32x4Pmin
	OpF32x4Pmax
	OpF64x2Abs
	OpF64x2Neg
	OpF64x2Sqrt
	OpF64x2Add
	OpF64x2Sub
	OpF64x2Mul
	OpF64x2Div
	OpF64x2Min
	OpF64x2Max
	OpF64x2Pmin
	OpF64x2Pmax
	OpI32x4TruncSatF32x4S
	OpI32x4TruncSatF32x4U
	OpF32x4ConvertI32x4S
	OpF32x4ConvertI32x4U
	OpI32x4TruncSatF64x2SZero
	OpI32x4TruncSatF64x2UZero
	OpF64x2ConvertLowI32x4S
	OpF64x2ConvertLowI32x4U
	OpI8x16RelaxedSwizzle
	OpI32x4RelaxedTruncF32x4S
	OpI32x4RelaxedTruncF32x4U
	OpI32x4RelaxedTruncF64x2SZero
	OpI32x4RelaxedTruncF64x2UZero
	OpF32x4RelaxedMadd
	OpF32x4RelaxedNmadd
	OpF64x2RelaxedMadd
	OpF64x2RelaxedNmadd
	OpI8x16RelaxedLaneselect
	OpI16x8RelaxedLaneselect
	OpI32x4RelaxedLaneselect
	OpI64x2RelaxedLaneselect
	OpF32x4RelaxedMin
	OpF32x4RelaxedMax
	OpF64x2RelaxedMin
	OpF64x2RelaxedMax
	OpI16x8RelaxedQ15mulrS
	OpI16x8RelaxedDotI8x16I7x16S
	OpI32x4RelaxedDotI8x16I7x16AddS

	// Threads opcodes, prefix 0xFE.
	OpMemoryAtomicNotify
	OpMemoryAtomicWait32
	OpMemoryAtomicWait64
	OpAtomicFence
	OpI32AtomicLoad
	OpI64AtomicLoad
	OpI32AtomicLoad8U
	OpI32AtomicLoad16U
	OpI64AtomicLoad8U
	OpI64AtomicLoad16U
	OpI64AtomicLoad32U
	OpI32AtomicStore
	OpI64AtomicStore
	OpI32AtomicStore8
	OpI32AtomicStore16
	OpI64AtomicStore8
	OpI64AtomicStore16
	OpI64AtomicStore32
	OpI32AtomicRmwAdd
	OpI64AtomicRmwAdd
	OpI32AtomicRmw8AddU
	OpI32AtomicRmw16AddU
	OpI64AtomicRmw8AddU
	OpI64AtomicRmw16AddU
	OpI64AtomicRmw32AddU
	OpI32AtomicRmwSub
	OpI64AtomicRmwSub
	OpI32AtomicRmw8SubU
	OpI32AtomicRmw16SubU
	OpI64AtomicRmw8SubU
	OpI64AtomicRmw16SubU
	OpI64AtomicRmw32SubU
	OpI32AtomicRmwAnd
	OpI64AtomicRmwAnd
	OpI32AtomicRmw8AndU
	OpI32AtomicRmw16AndU
	OpI64AtomicRmw8AndU
	OpI64AtomicRmw16AndU
	OpI64AtomicRmw32AndU
	OpI32AtomicRmwOr
	OpI64AtomicRmwOr
	OpI32AtomicRmw8OrU
	OpI32AtomicRmw16OrU
	OpI64AtomicRmw8OrU
	OpI64AtomicRmw16OrU
	OpI64AtomicRmw32OrU
	OpI32AtomicRmwXor
	OpI64AtomicRmwXor
	OpI32AtomicRmw8XorU
	OpI32AtomicRmw16XorU
	OpI64AtomicRmw8XorU
	OpI64AtomicRmw16XorU
	OpI64AtomicRmw32XorU
	OpI32AtomicRmwXchg
	OpI64AtomicRmwXchg
	OpI32AtomicRmw8XchgU
	OpI32AtomicRmw16XchgU
	OpI64AtomicRmw8XchgU
	OpI64AtomicRmw16XchgU
	OpI64AtomicRmw32XchgU
	OpI32AtomicRmwCmpxchg
	OpI64AtomicRmwCmpxchg
	OpI32AtomicRmw8CmpxchgU
	OpI32AtomicRmw16CmpxchgU
	OpI64AtomicRmw8CmpxchgU
	OpI64AtomicRmw16CmpxchgU
	OpI64AtomicRmw32CmpxchgU

	numOpCodes
)

var opTable = [numOpCodes]OpInfo{
	OpUnreachable:        {"unreachable", 0, 0x00, ImmNone},
	OpNop:                {"nop", 0, 0x01, ImmNone},
	OpBlock:              {"block", 0, 0x02, ImmBlock},
	OpLoop:               {"loop", 0, 0x03, ImmBlock},
	OpIf:                 {"if", 0, 0x04, ImmBlock},
	OpElse:               {"else", 0, 0x05, ImmNone},
	OpTry:                {"try", 0, 0x06, ImmBlock},
	OpCatch:              {"catch", 0, 0x07, ImmTag},
	OpThrow:              {"throw", 0, 0x08, ImmTag},
	OpRethrow:            {"rethrow", 0, 0x09, ImmLabel},
	OpThrowRef:           {"throw_ref", 0, 0x0A, ImmNone},
	OpEnd:                {"end", 0, 0x0B, ImmNone},
	OpBr:                 {"br", 0, 0x0C, ImmLabel},
	OpBrIf:               {"br_if", 0, 0x0D, ImmLabel},
	OpBrTable:            {"br_table", 0, 0x0E, ImmBrTable},
	OpReturn:             {"return", 0, 0x0F, ImmNone},
	OpCall:               {"call", 0, 0x10, ImmFunc},
	OpCallIndirect:       {"call_indirect", 0, 0x11, ImmCallIndirect},
	OpReturnCall:         {"return_call", 0, 0x12, ImmFunc},
	OpReturnCallIndirect: {"return_call_indirect", 0, 0x13, ImmCallIndirect},
	OpCallRef:            {"call_ref", 0, 0x14, ImmType},
	OpReturnCallRef:      {"return_call_ref", 0, 0x15, ImmType},
	OpDelegate:           {"delegate", 0, 0x18, ImmLabel},
	OpCatchAll:           {"catch_all", 0, 0x19, ImmNone},
	OpDrop:               {"drop", 0, 0x1A, ImmNone},
	OpSelect:             {"select", 0, 0x1B, ImmNone},
	OpSelectT:            {"select_t", 0, 0x1C, ImmSelectTypes},
	OpTryTable:           {"try_table", 0, 0x1F, ImmTryTable},
	OpLocalGet:           {"local.get", 0, 0x20, ImmLocal},
	OpLocalSet:           {"local.set", 0, 0x21, ImmLocal},
	OpLocalTee:           {"local.tee", 0, 0x22, ImmLocal},
	OpGlobalGet:          {"global.get", 0, 0x23, ImmGlobal},
	OpGlobalSet:          {"global.set", 0, 0x24, ImmGlobal},
	OpTableGet:           {"table.get", 0, 0x25, ImmTable},
	OpTableSet:           {"table.set", 0, 0x26, ImmTable},
	OpI32Load:            {"i32.load", 0, 0x28, ImmMemArg},
	OpI64Load:            {"i64.load", 0, 0x29, ImmMemArg},
	OpF32Load:            {"f32.load", 0, 0x2A, ImmMemArg},
	OpF64Load:            {"f64.load", 0, 0x2B, ImmMemArg},
	OpI32Load8S:          {"i32.load8_s", 0, 0x2C, ImmMemArg},
	OpI32Load8U:          {"i32.load8_u", 0, 0x2D, ImmMemArg},
	OpI32Load16S:         {"i32.load16_s", 0, 0x2E, ImmMemArg},
	OpI32Load16U:         {"i32.load16_u", 0, 0x2F, ImmMemArg},
	OpI64Load8S:          {"i64.load8_s", 0, 0x30, ImmMemArg},
	OpI64Load8U:          {"i64.load8_u", 0, 0x31, ImmMemArg},
	OpI64Load16S:         {"i64.load16_s", 0, 0x32, ImmMemArg},
	OpI64Load16U:         {"i64.load16_u", 0, 0x33, ImmMemArg},
	OpI64Load32S:         {"i64.load32_s", 0, 0x34, ImmMemArg},
	OpI64Load32U:         {"i64.load32_u", 0, 0x35, ImmMemArg},
	OpI32Store:           {"i32.store", 0, 0x36, ImmMemArg},
	OpI64Store:           {"i64.store", 0, 0x37, ImmMemArg},
	OpF32Store:           {"f32.store", 0, 0x38, ImmMemArg},
	OpF64Store:           {"f64.store", 0, 0x39, ImmMemArg},
	OpI32Store8:          {"i32.store8", 0, 0x3A, ImmMemArg},
	OpI32Store16:         {"i32.store16", 0, 0x3B, ImmMemArg},
	OpI64Store8:          {"i64.store8", 0, 0x3C, ImmMemArg},
	OpI64Store16:         {"i64.store16", 0, 0x3D, ImmMemArg},
	OpI64Store32:         {"i64.store32", 0, 0x3E, ImmMemArg},
	OpMemorySize:         {"memory.size", 0, 0x3F, ImmMemory},
	OpMemoryGrow:         {"memory.grow", 0, 0x40, ImmMemory},
	OpI32Const:           {"i32.const", 0, 0x41, ImmI32},
	OpI64Const:           {"i64.const", 0, 0x42, ImmI64},
	OpF32Const:           {"f32.const", 0, 0x43, ImmF32},
	OpF64Const:           {"f64.const", 0, 0x44, ImmF64},
	OpI32Eqz:             {"i32.eqz", 0, 0x45, ImmNone},
	OpI32Eq:              {"i32.eq", 0, 0x46, ImmNone},
	OpI32Ne:              {"i32.ne", 0, 0x47, ImmNone},
	OpI32LtS:             {"i32.lt_s", 0, 0x48, ImmNone},
	OpI32LtU:             {"i32.lt_u", 0, 0x49, ImmNone},
	OpI32GtS:             {"i32.gt_s", 0, 0x4A, ImmNone},
	OpI32GtU:             {"i32.gt_u", 0, 0x4B, ImmNone},
	OpI32LeS:             {"i32.le_s", 0, 0x4C, ImmNone},
	OpI32LeU:             {"i32.le_u", 0, 0x4D, ImmNone},
	OpI32GeS:             {"i32.ge_s", 0, 0x4E, ImmNone},
	OpI32GeU:             {"i32.ge_u", 0, 0x4F, ImmNone},
	OpI64Eqz:             {"i64.eqz", 0, 0x50, ImmNone},
	OpI64Eq:              {"i64.eq", 0, 0x51, ImmNone},
	OpI64Ne:              {"i64.ne", 0, 0x52, ImmNone},
	OpI64LtS:             {"i64.lt_s", 0, 0x53, ImmNone},
	OpI64LtU:             {"i64.lt_u", 0, 0x54, ImmNone},
	OpI64GtS:             {"i64.gt_s", 0, 0x55, ImmNone},
	OpI64GtU:             {"i64.gt_u", 0, 0x56, ImmNone},
	OpI64LeS:             {"i64.le_s", 0, 0x57, ImmNone},
	OpI64LeU:             {"i64.le_u", 0, 0x58, ImmNone},
	OpI64GeS:             {"i64.ge_s", 0, 0x59, ImmNone},
	OpI64GeU:             {"i64.ge_u", 0, 0x5A, ImmNone},
	OpF32Eq:              {"f32.eq", 0, 0x5B, ImmNone},
	OpF32Ne:              {"f32.ne", 0, 0x5C, ImmNone},
	OpF32Lt:              {"f32.lt", 0, 0x5D, ImmNone},
	OpF32Gt:              {"f32.gt", 0, 0x5E, ImmNone},
	OpF32Le:              {"f32.le", 0, 0x5F, ImmNone},
	OpF32Ge:              {"f32.ge", 0, 0x60, ImmNone},
	OpF64Eq:              {"f64.eq", 0, 0x61, ImmNone},
	OpF64Ne:              {"f64.ne", 0, 0x62, ImmNone},
	OpF64Lt:              {"f64.lt", 0, 0x63, ImmNone},
	OpF64Gt:              {"f64.gt", 0, 0x64, ImmNone},
	OpF64Le:              {"f64.le", 0, 0x65, ImmNone},
	OpF64Ge:              {"f64.ge", 0, 0x66, ImmNone},
	OpI32Clz:             {"i32.clz", 0, 0x67, ImmNone},
	OpI32Ctz:             {"i32.ctz", 0, 0x68, ImmNone},
	OpI32Popcnt:          {"i32.popcnt", 0, 0x69, ImmNone},
	OpI32Add:             {"i32.add", 0, 0x6A, ImmNone},
	OpI32Sub:             {"i32.sub", 0, 0x6B, ImmNone},
	OpI32Mul:             {"i32.mul", 0, 0x6C, ImmNone},
	OpI32DivS:            {"i32.div_s", 0, 0x6D, ImmNone},
	OpI32DivU:            {"i32.div_u", 0, 0x6E, ImmNone},
	OpI32RemS:            {"i32.rem_s", 0, 0x6F, ImmNone},
	OpI32RemU:            {"i32.rem_u", 0, 0x70, ImmNone},
	OpI32And:             {"i32.and", 0, 0x71, ImmNone},
	OpI32Or:              {"i32.or", 0, 0x72, ImmNone},
	OpI32Xor:             {"i32.xor", 0, 0x73, ImmNone},
	OpI32Shl:             {"i32.shl", 0, 0x74, ImmNone},
	OpI32ShrS:            {"i32.shr_s", 0, 0x75, ImmNone},
	OpI32ShrU:            {"i32.shr_u", 0, 0x76, ImmNone},
	OpI32Rotl:            {"i32.rotl", 0, 0x77, ImmNone},
	OpI32Rotr:            {"i32.rotr", 0, 0x78, ImmNone},
	OpI64Clz:             {"i64.clz", 0, 0x79, ImmNone},
	OpI64Ctz:             {"i64.ctz", 0, 0x7A, ImmNone},
	OpI64Popcnt:          {"i64.popcnt", 0, 0x7B, ImmNone},
	OpI64Add:             {"i64.add", 0, 0x7C, ImmNone},
	OpI64Sub:             {"i64.sub", 0, 0x7D, ImmNone},
	OpI64Mul:             {"i64.mul", 0, 0x7E, ImmNone},
	OpI64DivS:            {"i64.div_s", 0, 0x7F, ImmNone},
	OpI64DivU:            {"i64.div_u", 0, 0x80, ImmNone},
	OpI64RemS:            {"i64.rem_s", 0, 0x81, ImmNone},
	OpI64RemU:            {"i64.rem_u", 0, 0x82, ImmNone},
	OpI64And:             {"i64.and", 0, 0x83, ImmNone},
	OpI64Or:              {"i64.or", 0, 0x84, ImmNone},
	OpI64Xor:             {"i64.xor", 0, 0x85, ImmNone},
	OpI64Shl:             {"i64.shl", 0, 0x86, ImmNone},
	OpI64ShrS:            {"i64.shr_s", 0, 0x87, ImmNone},
	OpI64ShrU:            {"i64.shr_u", 0, 0x88, ImmNone},
	OpI64Rotl:            {"i64.rotl", 0, 0x89, ImmNone},
	OpI64Rotr:            {"i64.rotr", 0, 0x8A, ImmNone},
	OpF32Abs:             {"f32.abs", 0, 0x8B, ImmNone},
	OpF32Neg:             {"f32.neg", 0, 0x8C, ImmNone},
	OpF32Ceil:            {"f32.ceil", 0, 0x8D, ImmNone},
	OpF32Floor:           {"f32.floor", 0, 0x8E, ImmNone},
	OpF32Trunc:           {"f32.trunc", 0, 0x8F, ImmNone},
	OpF32Nearest:         {"f32.nearest", 0, 0x90, ImmNone},
	OpF32Sqrt:            {"f32.sqrt", 0, 0x91, ImmNone},
	OpF32Add:             {"f32.add", 0, 0x92, ImmNone},
	OpF32Sub:             {"f32.sub", 0, 0x93, ImmNone},
	OpF32Mul:             {"f32.mul", 0, 0x94, ImmNone},
	OpF32Div:             {"f32.div", 0, 0x95, ImmNone},
	OpF32Min:             {"f32.min", 0, 0x96, ImmNone},
	OpF32Max:             {"f32.max", 0, 0x97, ImmNone},
	OpF32Copysign:        {"f32.copysign", 0, 0x98, ImmNone},
	OpF64Abs:             {"f64.abs", 0, 0x99, ImmNone},
	OpF64Neg:             {"f64.neg", 0, 0x9A, ImmNone},
	OpF64Ceil:            {"f64.ceil", 0, 0x9B, ImmNone},
	OpF64Floor:           {"f64.floor", 0, 0x9C, ImmNone},
	OpF64Trunc:           {"f64.trunc", 0, 0x9D, ImmNone},
	OpF64Nearest:         {"f64.nearest", 0, 0x9E, ImmNone},
	OpF64Sqrt:            {"f64.sqrt", 0, 0x9F, ImmNone},
	OpF64Add:             {"f64.add", 0, 0xA0, ImmNone},
	OpF64Sub:             {"f64.sub", 0, 0xA1, ImmNone},
	OpF64Mul:             {"f64.mul", 0, 0xA2, ImmNone},
	OpF64Div:             {"f64.div", 0, 0xA3, ImmNone},
	OpF64Min:             {"f64.min", 0, 0xA4, ImmNone},
	OpF64Max:             {"f64.max", 0, 0xA5, ImmNone},
	OpF64Copysign:        {"f64.copysign", 0, 0xA6, ImmNone},
	OpI32WrapI64:         {"i32.wrap_i64", 0, 0xA7, ImmNone},
	OpI32TruncF32S:       {"i32.trunc_f32_s", 0, 0xA8, ImmNone},
	OpI32TruncF32U:       {"i32.trunc_f32_u", 0, 0xA9, ImmNone},
	OpI32TruncF64S:       {"i32.trunc_f64_s", 0, 0xAA, ImmNone},
	OpI32TruncF64U:       {"i32.trunc_f64_u", 0, 0xAB, ImmNone},
	OpI64ExtendI32S:      {"i64.extend_i32_s", 0, 0xAC, ImmNone},
	OpI64ExtendI32U:      {"i64.extend_i32_u", 0, 0xAD, ImmNone},
	OpI64TruncF32S:       {"i64.trunc_f32_s", 0, 0xAE, ImmNone},
	OpI64TruncF32U:       {"i64.trunc_f32_u", 0, 0xAF, ImmNone},
	OpI64TruncF64S:       {"i64.trunc_f64_s", 0, 0xB0, ImmNone},
	OpI64TruncF64U:       {"i64.trunc_f64_u", 0, 0xB1, ImmNone},
	OpF32ConvertI32S:     {"f32.convert_i32_s", 0, 0xB2, ImmNone},
	OpF32ConvertI32U:     {"f32.convert_i32_u", 0, 0xB3, ImmNone},
	OpF32ConvertI64S:     {"f32.convert_i64_s", 0, 0xB4, ImmNone},
	OpF32ConvertI64U:     {"f32.convert_i64_u", 0, 0xB5, ImmNone},
	OpF32DemoteF64:       {"f32.demote_f64", 0, 0xB6, ImmNone},
	OpF64ConvertI32S:     {"f64.convert_i32_s", 0, 0xB7, ImmNone},
	OpF64ConvertI32U:     {"f64.convert_i32_u", 0, 0xB8, ImmNone},
	OpF64ConvertI64S:     {"f64.convert_i64_s", 0, 0xB9, ImmNone},
	OpF64ConvertI64U:     {"f64.convert_i64_u", 0, 0xBA, ImmNone},
	OpF64PromoteF32:      {"f64.promote_f32", 0, 0xBB, ImmNone},
	OpI32ReinterpretF32:  {"i32.reinterpret_f32", 0, 0xBC, ImmNone},
	OpI64ReinterpretF64:  {"i64.reinterpret_f64", 0, 0xBD, ImmNone},
	OpF32ReinterpretI32:  {"f32.reinterpret_i32", 0, 0xBE, ImmNone},
	OpF64ReinterpretI64:  {"f64.reinterpret_i64", 0, 0xBF, ImmNone},
	OpI32Extend8S:        {"i32.extend8_s", 0, 0xC0, ImmNone},
	OpI32Extend16S:       {"i32.extend16_s", 0, 0xC1, ImmNone},
	OpI64Extend8S:        {"i64.extend8_s", 0, 0xC2, ImmNone},
	OpI64Extend16S:       {"i64.extend16_s", 0, 0xC3, ImmNone},
	OpI64Extend32S:       {"i64.extend32_s", 0, 0xC4, ImmNone},
	OpRefNull:            {"ref.null", 0, 0xD0, ImmHeapType},
	OpRefIsNull:          {"ref.is_null", 0, 0xD1, ImmNone},
	OpRefFunc:            {"ref.func", 0, 0xD2, ImmFunc},
	OpRefEq:              {"ref.eq", 0, 0xD3, ImmNone},
	OpRefAsNonNull:       {"ref.as_non_null", 0, 0xD4, ImmNone},
	OpBrOnNull:           {"br_on_null", 0, 0xD5, ImmLabel},
	OpBrOnNonNull:        {"br_on_non_null", 0, 0xD6, ImmLabel},

	OpStructNew:        {"struct.new", wasm.PrefixGC, 0x00, ImmType},
	OpStructNewDefault: {"struct.new_default", wasm.PrefixGC, 0x01, ImmType},
	OpStructGet:        {"struct.get", wasm.PrefixGC, 0x02, ImmStructField},
	OpStructGetS:       {"struct.get_s", wasm.PrefixGC, 0x03, ImmStructField},
	OpStructGetU:       {"struct.get_u", wasm.PrefixGC, 0x04, ImmStructField},
	OpStructSet:        {"struct.set", wasm.PrefixGC, 0x05, ImmStructField},
	OpArrayNew:         {"array.new", wasm.PrefixGC, 0x06, ImmType},
	OpArrayNewDefault:  {"array.new_default", wasm.PrefixGC, 0x07, ImmType},
	OpArrayNewFixed:    {"array.new_fixed", wasm.PrefixGC, 0x08, ImmArrayFixed},
	OpArrayNewData:     {"array.new_data", wasm.PrefixGC, 0x09, ImmArrayData},
	OpArrayNewElem:     {"array.new_elem", wasm.PrefixGC, 0x0A, ImmArrayElem},
	OpArrayGet:         {"array.get", wasm.PrefixGC, 0x0B, ImmType},
	OpArrayGetS:        {"array.get_s", wasm.PrefixGC, 0x0C, ImmType},
	OpArrayGetU:        {"array.get_u", wasm.PrefixGC, 0x0D, ImmType},
	OpArraySet:         {"array.set", wasm.PrefixGC, 0x0E, ImmType},
	OpArrayLen:         {"array.len", wasm.PrefixGC, 0x0F, ImmNone},
	OpArrayFill:        {"array.fill", wasm.PrefixGC, 0x10, ImmType},
	OpArrayCopy:        {"array.copy", wasm.PrefixGC, 0x11, ImmArrayCopy},
	OpArrayInitData:    {"array.init_data", wasm.PrefixGC, 0x12, ImmArrayData},
	OpArrayInitElem:    {"array.init_elem", wasm.PrefixGC, 0x13, ImmArrayElem},
	OpRefTest:          {"ref.test", wasm.PrefixGC, 0x14, ImmHeapType},
	OpRefTestNull:      {"ref.test_null", wasm.PrefixGC, 0x15, ImmHeapType},
	OpRefCast:          {"ref.cast", wasm.PrefixGC, 0x16, ImmHeapType},
	OpRefCastNull:      {"ref.cast_null", wasm.PrefixGC, 0x17, ImmHeapType},
	OpBrOnCast:         {"br_on_cast", wasm.PrefixGC, 0x18, ImmBrOnCast},
	OpBrOnCastFail:     {"br_on_cast_fail", wasm.PrefixGC, 0x19, ImmBrOnCast},
	OpAnyConvertExtern: {"any.convert_extern", wasm.PrefixGC, 0x1A, ImmNone},
	OpExternConvertAny: {"extern.convert_any", wasm.PrefixGC, 0x1B, ImmNone},
	OpRefI31:           {"ref.i31", wasm.PrefixGC, 0x1C, ImmNone},
	OpI31GetS:          {"i31.get_s", wasm.PrefixGC, 0x1D, ImmNone},
	OpI31GetU:          {"i31.get_u", wasm.PrefixGC, 0x1E, ImmNone},

	OpI32TruncSatF32S: {"i32.trunc_sat_f32_s", wasm.PrefixMisc, 0x00, ImmNone},
	OpI32TruncSatF32U: {"i32.trunc_sat_f32_u", wasm.PrefixMisc, 0x01, ImmNone},
	OpI32TruncSatF64S: {"i32.trunc_sat_f64_s", wasm.PrefixMisc, 0x02, ImmNone},
	OpI32TruncSatF64U: {"i32.trunc_sat_f64_u", wasm.PrefixMisc, 0x03, ImmNone},
	OpI64TruncSatF32S: {"i64.trunc_sat_f32_s", wasm.PrefixMisc, 0x04, ImmNone},
	OpI64TruncSatF32U: {"i64.trunc_sat_f32_u", wasm.PrefixMisc, 0x05, ImmNone},
	OpI64TruncSatF64S: {"i64.trunc_sat_f64_s", wasm.PrefixMisc, 0x06, ImmNone},
	OpI64TruncSatF64U: {"i64.trunc_sat_f64_u", wasm.PrefixMisc, 0x07, ImmNone},
	OpMemoryInit:      {"memory.init", wasm.PrefixMisc, 0x08, ImmMemoryInit},
	OpDataDrop:        {"data.drop", wasm.PrefixMisc, 0x09, ImmData},
	OpMemoryCopy:      {"memory.copy", wasm.PrefixMisc, 0x0A, ImmMemoryCopy},
	OpMemoryFill:      {"memory.fill", wasm.PrefixMisc, 0x0B, ImmMemory},
	OpTableInit:       {"table.init", wasm.PrefixMisc, 0x0C, ImmTableInit},
	OpElemDrop:        {"elem.drop", wasm.PrefixMisc, 0x0D, ImmElem},
	OpTableCopy:       {"table.copy", wasm.PrefixMisc, 0x0E, ImmTableCopy},
	OpTableGrow:       {"table.grow", wasm.PrefixMisc, 0x0F, ImmTable},
	OpTableSize:       {"table.size", wasm.PrefixMisc, 0x10, ImmTable},
	OpTableFill:       {"table.fill", wasm.PrefixMisc, 0x11, ImmTable},
	OpMemoryDiscard:   {"memory.discard", wasm.PrefixMisc, 0x12, ImmMemory},

	OpV128Load:                      {"v128.load", wasm.PrefixSIMD, 0x00, ImmMemArg},
	OpV128Load8x8S:                  {"v128.load8x8_s", wasm.PrefixSIMD, 0x01, ImmMemArg},
	OpV128Load8x8U:                  {"v128.load8x8_u", wasm.PrefixSIMD, 0x02, ImmMemArg},
	OpV128Load16x4S:                 {"v128.load16x4_s", wasm.PrefixSIMD, 0x03, ImmMemArg},
	OpV128Load16x4U:                 {"v128.load16x4_u", wasm.PrefixSIMD, 0x04, ImmMemArg},
	OpV128Load32x2S:                 {"v128.load32x2_s", wasm.PrefixSIMD, 0x05, ImmMemArg},
	OpV128Load32x2U:                 {"v128.load32x2_u", wasm.PrefixSIMD, 0x06, ImmMemArg},
	OpV128Load8Splat:                {"v128.load8_splat", wasm.PrefixSIMD, 0x07, ImmMemArg},
	OpV128Load16Splat:               {"v128.load16_splat", wasm.PrefixSIMD, 0x08, ImmMemArg},
	OpV128Load32Splat:               {"v128.load32_splat", wasm.PrefixSIMD, 0x09, ImmMemArg},
	OpV128Load64Splat:               {"v128.load64_splat", wasm.PrefixSIMD, 0x0A, ImmMemArg},
	OpV128Store:                     {"v128.store", wasm.PrefixSIMD, 0x0B, ImmMemArg},
	OpV128Const:                     {"v128.const", wasm.PrefixSIMD, 0x0C, ImmV128},
	OpI8x16Shuffle:                  {"i8x16.shuffle", wasm.PrefixSIMD, 0x0D, ImmShuffle},
	OpI8x16Swizzle:                  {"i8x16.swizzle", wasm.PrefixSIMD, 0x0E, ImmNone},
	OpI8x16Splat:                    {"i8x16.splat", wasm.PrefixSIMD, 0x0F, ImmNone},
	OpI16x8Splat:                    {"i16x8.splat", wasm.PrefixSIMD, 0x10, ImmNone},
	OpI32x4Splat:                    {"i32x4.splat", wasm.PrefixSIMD, 0x11, ImmNone},
	OpI64x2Splat:                    {"i64x2.splat", wasm.PrefixSIMD, 0x12, ImmNone},
	OpF32x4Splat:                    {"f32x4.splat", wasm.PrefixSIMD, 0x13, ImmNone},
	OpF64x2Splat:                    {"f64x2.splat", wasm.PrefixSIMD, 0x14, ImmNone},
	OpI8x16ExtractLaneS:             {"i8x16.extract_lane_s", wasm.PrefixSIMD, 0x15, ImmLane},
	OpI8x16ExtractLaneU:             {"i8x16.extract_lane_u", wasm.PrefixSIMD, 0x16, ImmLane},
	OpI8x16ReplaceLane:              {"i8x16.replace_lane", wasm.PrefixSIMD, 0x17, ImmLane},
	OpI16x8ExtractLaneS:             {"i16x8.extract_lane_s", wasm.PrefixSIMD, 0x18, ImmLane},
	OpI16x8ExtractLaneU:             {"i16x8.extract_lane_u", wasm.PrefixSIMD, 0x19, ImmLane},
	OpI16x8ReplaceLane:              {"i16x8.replace_lane", wasm.PrefixSIMD, 0x1A, ImmLane},
	OpI32x4ExtractLane:              {"i32x4.extract_lane", wasm.PrefixSIMD, 0x1B, ImmLane},
	OpI32x4ReplaceLane:              {"i32x4.replace_lane", wasm.PrefixSIMD, 0x1C, ImmLane},
	OpI64x2ExtractLane:              {"i64x2.extract_lane", wasm.PrefixSIMD, 0x1D, ImmLane},
	OpI64x2ReplaceLane:              {"i64x2.replace_lane", wasm.PrefixSIMD, 0x1E, ImmLane},
	OpF32x4ExtractLane:              {"f32x4.extract_lane", wasm.PrefixSIMD, 0x1F, ImmLane},
	OpF32x4ReplaceLane:              {"f32x4.replace_lane", wasm.PrefixSIMD, 0x20, ImmLane},
	OpF64x2ExtractLane:              {"f64x2.extract_lane", wasm.PrefixSIMD, 0x21, ImmLane},
	OpF64x2ReplaceLane:              {"f64x2.replace_lane", wasm.PrefixSIMD, 0x22, ImmLane},
	OpI8x16Eq:                       {"i8x16.eq", wasm.PrefixSIMD, 0x23, ImmNone},
	OpI8x16Ne:                       {"i8x16.ne", wasm.PrefixSIMD, 0x24, ImmNone},
	OpI8x16LtS:                      {"i8x16.lt_s", wasm.PrefixSIMD, 0x25, ImmNone},
	OpI8x16LtU:                      {"i8x16.lt_u", wasm.PrefixSIMD, 0x26, ImmNone},
	OpI8x16GtS:                      {"i8x16.gt_s", wasm.PrefixSIMD, 0x27, ImmNone},
	OpI8x16GtU:                      {"i8x16.gt_u", wasm.PrefixSIMD, 0x28, ImmNone},
	OpI8x16LeS:                      {"i8x16.le_s", wasm.PrefixSIMD, 0x29, ImmNone},
	OpI8x16LeU:                      {"i8x16.le_u", wasm.PrefixSIMD, 0x2A, ImmNone},
	OpI8x16GeS:                      {"i8x16.ge_s", wasm.PrefixSIMD, 0x2B, ImmNone},
	OpI8x16GeU:                      {"i8x16.ge_u", wasm.PrefixSIMD, 0x2C, ImmNone},
	OpI16x8Eq:                       {"i16x8.eq", wasm.PrefixSIMD, 0x2D, ImmNone},
	OpI16x8Ne:                       {"i16x8.ne", wasm.PrefixSIMD, 0x2E, ImmNone},
	OpI16x8LtS:                      {"i16x8.lt_s", wasm.PrefixSIMD, 0x2F, ImmNone},
	OpI16x8LtU:                      {"i16x8.lt_u", wasm.PrefixSIMD, 0x30, ImmNone},
	OpI16x8GtS:                      {"i16x8.gt_s", wasm.PrefixSIMD, 0x31, ImmNone},
	OpI16x8GtU:                      {"i16x8.gt_u", wasm.PrefixSIMD, 0x32, ImmNone},
	OpI16x8LeS:                      {"i16x8.le_s", wasm.PrefixSIMD, 0x33, ImmNone},
	OpI16x8LeU:                      {"i16x8.le_u", wasm.PrefixSIMD, 0x34, ImmNone},
	OpI16x8GeS:                      {"i16x8.ge_s", wasm.PrefixSIMD, 0x35, ImmNone},
	OpI16x8GeU:                      {"i16x8.ge_u", wasm.PrefixSIMD, 0x36, ImmNone},
	OpI32x4Eq:                       {"i32x4.eq", wasm.PrefixSIMD, 0x37, ImmNone},
	OpI32x4Ne:                       {"i32x4.ne", wasm.PrefixSIMD, 0x38, ImmNone},
	OpI32x4LtS:                      {"i32x4.lt_s", wasm.PrefixSIMD, 0x39, ImmNone},
	OpI32x4LtU:                      {"i32x4.lt_u", wasm.PrefixSIMD, 0x3A, ImmNone},
	OpI32x4GtS:                      {"i32x4.gt_s", wasm.PrefixSIMD, 0x3B, ImmNone},
	OpI32x4GtU:                      {"i32x4.gt_u", wasm.PrefixSIMD, 0x3C, ImmNone},
	OpI32x4LeS:                      {"i32x4.le_s", wasm.PrefixSIMD, 0x3D, ImmNone},
	OpI32x4LeU:                      {"i32x4.le_u", wasm.PrefixSIMD, 0x3E, ImmNone},
	OpI32x4GeS:                      {"i32x4.ge_s", wasm.PrefixSIMD, 0x3F, ImmNone},
	OpI32x4GeU:                      {"i32x4.ge_u", wasm.PrefixSIMD, 0x40, ImmNone},
	OpF32x4Eq:                       {"f32x4.eq", wasm.PrefixSIMD, 0x41, ImmNone},
	OpF32x4Ne:                       {"f32x4.ne", wasm.PrefixSIMD, 0x42, ImmNone},
	OpF32x4Lt:                       {"f32x4.lt", wasm.PrefixSIMD, 0x43, ImmNone},
	OpF32x4Gt:                       {"f32x4.gt", wasm.PrefixSIMD, 0x44, ImmNone},
	OpF32x4Le:                       {"f32x4.le", wasm.PrefixSIMD, 0x45, ImmNone},
	OpF32x4Ge:                       {"f32x4.ge", wasm.PrefixSIMD, 0x46, ImmNone},
	OpF64x2Eq:                       {"f64x2.eq", wasm.PrefixSIMD, 0x47, ImmNone},
	OpF64x2Ne:                       {"f64x2.ne", wasm.PrefixSIMD, 0x48, ImmNone},
	OpF64x2Lt:                       {"f64x2.lt", wasm.PrefixSIMD, 0x49, ImmNone},
	OpF64x2Gt:                       {"f64x2.gt", wasm.PrefixSIMD, 0x4A, ImmNone},
	OpF64x2Le:                       {"f64x2.le", wasm.PrefixSIMD, 0x4B, ImmNone},
	OpF64x2Ge:                       {"f64x2.ge", wasm.PrefixSIMD, 0x4C, ImmNone},
	OpV128Not:                       {"v128.not", wasm.PrefixSIMD, 0x4D, ImmNone},
	OpV128And:                       {"v128.and", wasm.PrefixSIMD, 0x4E, ImmNone},
	OpV128Andnot:                    {"v128.andnot", wasm.PrefixSIMD, 0x4F, ImmNone},
	OpV128Or:                        {"v128.or", wasm.PrefixSIMD, 0x50, ImmNone},
	OpV128Xor:                       {"v128.xor", wasm.PrefixSIMD, 0x51, ImmNone},
	OpV128Bitselect:                 {"v128.bitselect", wasm.PrefixSIMD, 0x52, ImmNone},
	OpV128AnyTrue:                   {"v128.any_true", wasm.PrefixSIMD, 0x53, ImmNone},
	OpV128Load8Lane:                 {"v128.load8_lane", wasm.PrefixSIMD, 0x54, ImmMemArgLane},
	OpV128Load16Lane:                {"v128.load16_lane", wasm.PrefixSIMD, 0x55, ImmMemArgLane},
	OpV128Load32Lane:                {"v128.load32_lane", wasm.PrefixSIMD, 0x56, ImmMemArgLane},
	OpV128Load64Lane:                {"v128.load64_lane", wasm.PrefixSIMD, 0x57, ImmMemArgLane},
	OpV128Store8Lane:                {"v128.store8_lane", wasm.PrefixSIMD, 0x58, ImmMemArgLane},
	OpV128Store16Lane:               {"v128.store16_lane", wasm.PrefixSIMD, 0x59, ImmMemArgLane},
	OpV128Store32Lane:               {"v128.store32_lane", wasm.PrefixSIMD, 0x5A, ImmMemArgLane},
	OpV128Store64Lane:               {"v128.store64_lane", wasm.PrefixSIMD, 0x5B, ImmMemArgLane},
	OpV128Load32Zero:                {"v128.load32_zero", wasm.PrefixSIMD, 0x5C, ImmMemArg},
	OpV128Load64Zero:                {"v128.load64_zero", wasm.PrefixSIMD, 0x5D, ImmMemArg},
	OpF32x4DemoteF64x2Zero:          {"f32x4.demote_f64x2_zero", wasm.PrefixSIMD, 0x5E, ImmNone},
	OpF64x2PromoteLowF32x4:          {"f64x2.promote_low_f32x4", wasm.PrefixSIMD, 0x5F, ImmNone},
	OpI8x16Abs:                      {"i8x16.abs", wasm.PrefixSIMD, 0x60, ImmNone},
	OpI8x16Neg:                      {"i8x16.neg", wasm.PrefixSIMD, 0x61, ImmNone},
	OpI8x16Popcnt:                   {"i8x16.popcnt", wasm.PrefixSIMD, 0x62, ImmNone},
	OpI8x16AllTrue:                  {"i8x16.all_true", wasm.PrefixSIMD, 0x63, ImmNone},
	OpI8x16Bitmask:                  {"i8x16.bitmask", wasm.PrefixSIMD, 0x64, ImmNone},
	OpI8x16NarrowI16x8S:             {"i8x16.narrow_i16x8_s", wasm.PrefixSIMD, 0x65, ImmNone},
	OpI8x16NarrowI16x8U:             {"i8x16.narrow_i16x8_u", wasm.PrefixSIMD, 0x66, ImmNone},
	OpF32x4Ceil:                     {"f32x4.ceil", wasm.PrefixSIMD, 0x67, ImmNone},
	OpF32x4Floor:                    {"f32x4.floor", wasm.PrefixSIMD, 0x68, ImmNone},
	OpF32x4Trunc:                    {"f32x4.trunc", wasm.PrefixSIMD, 0x69, ImmNone},
	OpF32x4Nearest:                  {"f32x4.nearest", wasm.PrefixSIMD, 0x6A, ImmNone},
	OpI8x16Shl:                      {"i8x16.shl", wasm.PrefixSIMD, 0x6B, ImmNone},
	OpI8x16ShrS:                     {"i8x16.shr_s", wasm.PrefixSIMD, 0x6C, ImmNone},
	OpI8x16ShrU:                     {"i8x16.shr_u", wasm.PrefixSIMD, 0x6D, ImmNone},
	OpI8x16Add:                      {"i8x16.add", wasm.PrefixSIMD, 0x6E, ImmNone},
	OpI8x16AddSatS:                  {"i8x16.add_sat_s", wasm.PrefixSIMD, 0x6F, ImmNone},
	OpI8x16AddSatU:                  {"i8x16.add_sat_u", wasm.PrefixSIMD, 0x70, ImmNone},
	OpI8x16Sub:                      {"i8x16.sub", wasm.PrefixSIMD, 0x71, ImmNone},
	OpI8x16SubSatS:                  {"i8x16.sub_sat_s", wasm.PrefixSIMD, 0x72, ImmNone},
	OpI8x16SubSatU:                  {"i8x16.sub_sat_u", wasm.PrefixSIMD, 0x73, ImmNone},
	OpF64x2Ceil:                     {"f64x2.ceil", wasm.PrefixSIMD, 0x74, ImmNone},
	OpF64x2Floor:                    {"f64x2.floor", wasm.PrefixSIMD, 0x75, ImmNone},
	OpI8x16MinS:                     {"i8x16.min_s", wasm.PrefixSIMD, 0x76, ImmNone},
	OpI8x16MinU:                     {"i8x16.min_u", wasm.PrefixSIMD, 0x77, ImmNone},
	OpI8x16MaxS:                     {"i8x16.max_s", wasm.PrefixSIMD, 0x78, ImmNone},
	OpI8x16MaxU:                     {"i8x16.max_u", wasm.PrefixSIMD, 0x79, ImmNone},
	OpF64x2Trunc:                    {"f64x2.trunc", wasm.PrefixSIMD, 0x7A, ImmNone},
	OpI8x16AvgrU:                    {"i8x16.avgr_u", wasm.PrefixSIMD, 0x7B, ImmNone},
	OpI16x8ExtaddPairwiseI8x16S:     {"i16x8.extadd_pairwise_i8x16_s", wasm.PrefixSIMD, 0x7C, ImmNone},
	OpI16x8ExtaddPairwiseI8x16U:     {"i16x8.extadd_pairwise_i8x16_u", wasm.PrefixSIMD, 0x7D, ImmNone},
	OpI32x4ExtaddPairwiseI16x8S:     {"i32x4.extadd_pairwise_i16x8_s", wasm.PrefixSIMD, 0x7E, ImmNone},
	OpI32x4ExtaddPairwiseI16x8U:     {"i32x4.extadd_pairwise_i16x8_u", wasm.PrefixSIMD, 0x7F, ImmNone},
	OpI16x8Abs:                      {"i16x8.abs", wasm.PrefixSIMD, 0x80, ImmNone},
	OpI16x8Neg:                      {"i16x8.neg", wasm.PrefixSIMD, 0x81, ImmNone},
	OpI16x8Q15mulrSatS:              {"i16x8.q15mulr_sat_s", wasm.PrefixSIMD, 0x82, ImmNone},
	OpI16x8AllTrue:                  {"i16x8.all_true", wasm.PrefixSIMD, 0x83, ImmNone},
	OpI16x8Bitmask:                  {"i16x8.bitmask", wasm.PrefixSIMD, 0x84, ImmNone},
	OpI16x8NarrowI32x4S:             {"i16x8.narrow_i32x4_s", wasm.PrefixSIMD, 0x85, ImmNone},
	OpI16x8NarrowI32x4U:             {"i16x8.narrow_i32x4_u", wasm.PrefixSIMD, 0x86, ImmNone},
	OpI16x8ExtendLowI8x16S:          {"i16x8.extend_low_i8x16_s", wasm.PrefixSIMD, 0x87, ImmNone},
	OpI16x8ExtendHighI8x16S:         {"i16x8.extend_high_i8x16_s", wasm.PrefixSIMD, 0x88, ImmNone},
	OpI16x8ExtendLowI8x16U:          {"i16x8.extend_low_i8x16_u", wasm.PrefixSIMD, 0x89, ImmNone},
	OpI16x8ExtendHighI8x16U:         {"i16x8.extend_high_i8x16_u", wasm.PrefixSIMD, 0x8A, ImmNone},
	OpI16x8Shl:                      {"i16x8.shl", wasm.PrefixSIMD, 0x8B, ImmNone},
	OpI16x8ShrS:                     {"i16x8.shr_s", wasm.PrefixSIMD, 0x8C, ImmNone},
	OpI16x8ShrU:                     {"i16x8.shr_u", wasm.PrefixSIMD, 0x8D, ImmNone},
	OpI16x8Add:                      {"i16x8.add", wasm.PrefixSIMD, 0x8E, ImmNone},
	OpI16x8AddSatS:                  {"i16x8.add_sat_s", wasm.PrefixSIMD, 0x8F, ImmNone},
	OpI16x8AddSatU:                  {"i16x8.add_sat_u", wasm.PrefixSIMD, 0x90, ImmNone},
	OpI16x8Sub:                      {"i16x8.sub", wasm.PrefixSIMD, 0x91, ImmNone},
	OpI16x8SubSatS:                  {"i16x8.sub_sat_s", wasm.PrefixSIMD, 0x92, ImmNone},
	OpI16x8SubSatU:                  {"i16x8.sub_sat_u", wasm.PrefixSIMD, 0x93, ImmNone},
	OpF64x2Nearest:                  {"f64x2.nearest", wasm.PrefixSIMD, 0x94, ImmNone},
	OpI16x8Mul:                      {"i16x8.mul", wasm.PrefixSIMD, 0x95, ImmNone},
	OpI16x8MinS:                     {"i16x8.min_s", wasm.PrefixSIMD, 0x96, ImmNone},
	OpI16x8MinU:                     {"i16x8.min_u", wasm.PrefixSIMD, 0x97, ImmNone},
	OpI16x8MaxS:                     {"i16x8.max_s", wasm.PrefixSIMD, 0x98, ImmNone},
	OpI16x8MaxU:                     {"i16x8.max_u", wasm.PrefixSIMD, 0x99, ImmNone},
	OpI16x8AvgrU:                    {"i16x8.avgr_u", wasm.PrefixSIMD, 0x9B, ImmNone},
	OpI16x8ExtmulLowI8x16S:          {"i16x8.extmul_low_i8x16_s", wasm.PrefixSIMD, 0x9C, ImmNone},
	OpI16x8ExtmulHighI8x16S:         {"i16x8.extmul_high_i8x16_s", wasm.PrefixSIMD, 0x9D, ImmNone},
	OpI16x8ExtmulLowI8x16U:          {"i16x8.extmul_low_i8x16_u", wasm.PrefixSIMD, 0x9E, ImmNone},
	OpI16x8ExtmulHighI8x16U:         {"i16x8.extmul_high_i8x16_u", wasm.PrefixSIMD, 0x9F, ImmNone},
	OpI32x4Abs:                      {"i32x4.abs", wasm.PrefixSIMD, 0xA0, ImmNone},
	OpI32x4Neg:                      {"i32x4.neg", wasm.PrefixSIMD, 0xA1, ImmNone},
	OpI32x4AllTrue:                  {"i32x4.all_true", wasm.PrefixSIMD, 0xA3, ImmNone},
	OpI32x4Bitmask:                  {"i32x4.bitmask", wasm.PrefixSIMD, 0xA4, ImmNone},
	OpI32x4ExtendLowI16x8S:          {"i32x4.extend_low_i16x8_s", wasm.PrefixSIMD, 0xA7, ImmNone},
	OpI32x4ExtendHighI16x8S:         {"i32x4.extend_high_i16x8_s", wasm.PrefixSIMD, 0xA8, ImmNone},
	OpI32x4ExtendLowI16x8U:          {"i32x4.extend_low_i16x8_u", wasm.PrefixSIMD, 0xA9, ImmNone},
	OpI32x4ExtendHighI16x8U:         {"i32x4.extend_high_i16x8_u", wasm.PrefixSIMD, 0xAA, ImmNone},
	OpI32x4Shl:                      {"i32x4.shl", wasm.PrefixSIMD, 0xAB, ImmNone},
	OpI32x4ShrS:                     {"i32x4.shr_s", wasm.PrefixSIMD, 0xAC, ImmNone},
	OpI32x4ShrU:                     {"i32x4.shr_u", wasm.PrefixSIMD, 0xAD, ImmNone},
	OpI32x4Add:                      {"i32x4.add", wasm.PrefixSIMD, 0xAE, ImmNone},
	OpI32x4Sub:                      {"i32x4.sub", wasm.PrefixSIMD, 0xB1, ImmNone},
	OpI32x4Mul:                      {"i32x4.mul", wasm.PrefixSIMD, 0xB5, ImmNone},
	OpI32x4MinS:                     {"i32x4.min_s", wasm.PrefixSIMD, 0xB6, ImmNone},
	OpI32x4MinU:                     {"i32x4.min_u", wasm.PrefixSIMD, 0xB7, ImmNone},
	OpI32x4MaxS:                     {"i32x4.max_s", wasm.PrefixSIMD, 0xB8, ImmNone},
	OpI32x4MaxU:                     {"i32x4.max_u", wasm.PrefixSIMD, 0xB9, ImmNone},
	OpI32x4DotI16x8S:                {"i32x4.dot_i16x8_s", wasm.PrefixSIMD, 0xBA, ImmNone},
	OpI32x4ExtmulLowI16x8S:          {"i32x4.extmul_low_i16x8_s", wasm.PrefixSIMD, 0xBC, ImmNone},
	OpI32x4ExtmulHighI16x8S:         {"i32x4.extmul_high_i16x8_s", wasm.PrefixSIMD, 0xBD, ImmNone},
	OpI32x4ExtmulLowI16x8U:          {"i32x4.extmul_low_i16x8_u", wasm.PrefixSIMD, 0xBE, ImmNone},
	OpI32x4ExtmulHighI16x8U:         {"i32x4.extmul_high_i16x8_u", wasm.PrefixSIMD, 0xBF, ImmNone},
	OpI64x2Abs:                      {"i64x2.abs", wasm.PrefixSIMD, 0xC0, ImmNone},
	OpI64x2Neg:                      {"i64x2.neg", wasm.PrefixSIMD, 0xC1, ImmNone},
	OpI64x2AllTrue:                  {"i64x2.all_true", wasm.PrefixSIMD, 0xC3, ImmNone},
	OpI64x2Bitmask:                  {"i64x2.bitmask", wasm.PrefixSIMD, 0xC4, ImmNone},
	OpI64x2ExtendLowI32x4S:          {"i64x2.extend_low_i32x4_s", wasm.PrefixSIMD, 0xC7, ImmNone},
	OpI64x2ExtendHighI32x4S:         {"i64x2.extend_high_i32x4_s", wasm.PrefixSIMD, 0xC8, ImmNone},
	OpI64x2ExtendLowI32x4U:          {"i64x2.extend_low_i32x4_u", wasm.PrefixSIMD, 0xC9, ImmNone},
	OpI64x2ExtendHighI32x4U:         {"i64x2.extend_high_i32x4_u", wasm.PrefixSIMD, 0xCA, ImmNone},
	OpI64x2Shl:                      {"i64x2.shl", wasm.PrefixSIMD, 0xCB, ImmNone},
	OpI64x2ShrS:                     {"i64x2.shr_s", wasm.PrefixSIMD, 0xCC, ImmNone},
	OpI64x2ShrU:                     {"i64x2.shr_u", wasm.PrefixSIMD, 0xCD, ImmNone},
	OpI64x2Add:                      {"i64x2.add", wasm.PrefixSIMD, 0xCE, ImmNone},
	OpI64x2Sub:                      {"i64x2.sub", wasm.PrefixSIMD, 0xD1, ImmNone},
	OpI64x2Mul:                      {"i64x2.mul", wasm.PrefixSIMD, 0xD5, ImmNone},
	OpI64x2Eq:                       {"i64x2.eq", wasm.PrefixSIMD, 0xD6, ImmNone},
	OpI64x2Ne:                       {"i64x2.ne", wasm.PrefixSIMD, 0xD7, ImmNone},
	OpI64x2LtS:                      {"i64x2.lt_s", wasm.PrefixSIMD, 0xD8, ImmNone},
	OpI64x2GtS:                      {"i64x2.gt_s", wasm.PrefixSIMD, 0xD9, ImmNone},
	OpI64x2LeS:                      {"i64x2.le_s", wasm.PrefixSIMD, 0xDA, ImmNone},
	OpI64x2GeS:                      {"i64x2.ge_s", wasm.PrefixSIMD, 0xDB, ImmNone},
	OpI64x2ExtmulLowI32x4S:          {"i64x2.extmul_low_i32x4_s", wasm.PrefixSIMD, 0xDC, ImmNone},
	OpI64x2ExtmulHighI32x4S:         {"i64x2.extmul_high_i32x4_s", wasm.PrefixSIMD, 0xDD, ImmNone},
	OpI64x2ExtmulLowI32x4U:          {"i64x2.extmul_low_i32x4_u", wasm.PrefixSIMD, 0xDE, ImmNone},
	OpI64x2ExtmulHighI32x4U:         {"i64x2.extmul_high_i32x4_u", wasm.PrefixSIMD, 0xDF, ImmNone},
	OpF32x4Abs:                      {"f32x4.abs", wasm.PrefixSIMD, 0xE0, ImmNone},
	OpF32x4Neg:                      {"f32x4.neg", wasm.PrefixSIMD, 0xE1, ImmNone},
	OpF32x4Sqrt:                     {"f32x4.sqrt", wasm.PrefixSIMD, 0xE3, ImmNone},
	OpF32x4Add:                      {"f32x4.add", wasm.PrefixSIMD, 0xE4, ImmNone},
	OpF32x4Sub:                      {"f32x4.sub", wasm.PrefixSIMD, 0xE5, ImmNone},
	OpF32x4Mul:                      {"f32x4.mul", wasm.PrefixSIMD, 0xE6, ImmNone},
	OpF32x4Div:                      {"f32x4.div", wasm.PrefixSIMD, 0xE7, ImmNone},
	OpF32x4Min:                      {"f32x4.min", wasm.PrefixSIMD, 0xE8, ImmNone},
	OpF32x4Max:                      {"f32x4.max", wasm.PrefixSIMD, 0xE9, ImmNone},
	OpF32x4Pmin:                     {"f32x4.pmin", wasm.PrefixSIMD, 0xEA, ImmNone},
	OpF32x4Pmax:                     {"f32x4.pmax", wasm.PrefixSIMD, 0xEB, ImmNone},
	OpF64x2Abs:                      {"f64x2.abs", wasm.PrefixSIMD, 0xEC, ImmNone},
	OpF64x2Neg:                      {"f64x2.neg", wasm.PrefixSIMD, 0xED, ImmNone},
	OpF64x2Sqrt:                     {"f64x2.sqrt", wasm.PrefixSIMD, 0xEF, ImmNone},
	OpF64x2Add:                      {"f64x2.add", wasm.PrefixSIMD, 0xF0, ImmNone},
	OpF64x2Sub:                      {"f64x2.sub", wasm.PrefixSIMD, 0xF1, ImmNone},
	OpF64x2Mul:                      {"f64x2.mul", wasm.PrefixSIMD, 0xF2, ImmNone},
	OpF64x2Div:                      {"f64x2.div", wasm.PrefixSIMD, 0xF3, ImmNone},
	OpF64x2Min:                      {"f64x2.min", wasm.PrefixSIMD, 0xF4, ImmNone},
	OpF64x2Max:                      {"f64x2.max", wasm.PrefixSIMD, 0xF5, ImmNone},
	OpF64x2Pmin:                     {"f64x2.pmin", wasm.PrefixSIMD, 0xF6, ImmNone},
	OpF64x2Pmax:                     {"f64x2.pmax", wasm.PrefixSIMD, 0xF7, ImmNone},
	OpI32x4TruncSatF32x4S:           {"i32x4.trunc_sat_f32x4_s", wasm.PrefixSIMD, 0xF8, ImmNone},
	OpI32x4TruncSatF32x4U:           {"i32x4.trunc_sat_f32x4_u", wasm.PrefixSIMD, 0xF9, ImmNone},
	OpF32x4ConvertI32x4S:            {"f32x4.convert_i32x4_s", wasm.PrefixSIMD, 0xFA, ImmNone},
	OpF32x4ConvertI32x4U:            {"f32x4.convert_i32x4_u", wasm.PrefixSIMD, 0xFB, ImmNone},
	OpI32x4TruncSatF64x2SZero:       {"i32x4.trunc_sat_f64x2_s_zero", wasm.PrefixSIMD, 0xFC, ImmNone},
	OpI32x4TruncSatF64x2UZero:       {"i32x4.trunc_sat_f64x2_u_zero", wasm.PrefixSIMD, 0xFD, ImmNone},
	OpF64x2ConvertLowI32x4S:         {"f64x2.convert_low_i32x4_s", wasm.PrefixSIMD, 0xFE, ImmNone},
	OpF64x2ConvertLowI32x4U:         {"f64x2.convert_low_i32x4_u", wasm.PrefixSIMD, 0xFF, ImmNone},
	OpI8x16RelaxedSwizzle:           {"i8x16.relaxed_swizzle", wasm.PrefixSIMD, 0x100, ImmNone},
	OpI32x4RelaxedTruncF32x4S:       {"i32x4.relaxed_trunc_f32x4_s", wasm.PrefixSIMD, 0x101, ImmNone},
	OpI32x4RelaxedTruncF32x4U:       {"i32x4.relaxed_trunc_f32x4_u", wasm.PrefixSIMD, 0x102, ImmNone},
	OpI32x4RelaxedTruncF64x2SZero:   {"i32x4.relaxed_trunc_f64x2_s_zero", wasm.PrefixSIMD, 0x103, ImmNone},
	OpI32x4RelaxedTruncF64x2UZero:   {"i32x4.relaxed_trunc_f64x2_u_zero", wasm.PrefixSIMD, 0x104, ImmNone},
	OpF32x4RelaxedMadd:              {"f32x4.relaxed_madd", wasm.PrefixSIMD, 0x105, ImmNone},
	OpF32x4RelaxedNmadd:             {"f32x4.relaxed_nmadd", wasm.PrefixSIMD, 0x106, ImmNone},
	OpF64x2RelaxedMadd:              {"f64x2.relaxed_madd", wasm.PrefixSIMD, 0x107, ImmNone},
	OpF64x2RelaxedNmadd:             {"f64x2.relaxed_nmadd", wasm.PrefixSIMD, 0x108, ImmNone},
	OpI8x16RelaxedLaneselect:        {"i8x16.relaxed_laneselect", wasm.PrefixSIMD, 0x109, ImmNone},
	OpI16x8RelaxedLaneselect:        {"i16x8.relaxed_laneselect", wasm.PrefixSIMD, 0x10A, ImmNone},
	OpI32x4RelaxedLaneselect:        {"i32x4.relaxed_laneselect", wasm.PrefixSIMD, 0x10B, ImmNone},
	OpI64x2RelaxedLaneselect:        {"i64x2.relaxed_laneselect", wasm.PrefixSIMD, 0x10C, ImmNone},
	OpF32x4RelaxedMin:               {"f32x4.relaxed_min", wasm.PrefixSIMD, 0x10D, ImmNone},
	OpF32x4RelaxedMax:               {"f32x4.relaxed_max", wasm.PrefixSIMD, 0x10E, ImmNone},
	OpF64x2RelaxedMin:               {"f64x2.relaxed_min", wasm.PrefixSIMD, 0x10F, ImmNone},
	OpF64x2RelaxedMax:               {"f64x2.relaxed_max", wasm.PrefixSIMD, 0x110, ImmNone},
	OpI16x8RelaxedQ15mulrS:          {"i16x8.relaxed_q15mulr_s", wasm.PrefixSIMD, 0x111, ImmNone},
	OpI16x8RelaxedDotI8x16I7x16S:    {"i16x8.relaxed_dot_i8x16_i7x16_s", wasm.PrefixSIMD, 0x112, ImmNone},
	OpI32x4RelaxedDotI8x16I7x16AddS: {"i32x4.relaxed_dot_i8x16_i7x16_add_s", wasm.PrefixSIMD, 0x113, ImmNone},

	OpMemoryAtomicNotify:     {"memory.atomic.notify", wasm.PrefixAtomic, 0x00, ImmMemArg},
	OpMemoryAtomicWait32:     {"memory.atomic.wait32", wasm.PrefixAtomic, 0x01, ImmMemArg},
	OpMemoryAtomicWait64:     {"memory.atomic.wait64", wasm.PrefixAtomic, 0x02, ImmMemArg},
	OpAtomicFence:            {"atomic.fence", wasm.PrefixAtomic, 0x03, ImmFence},
	OpI32AtomicLoad:          {"i32.atomic.load", wasm.PrefixAtomic, 0x10, ImmMemArg},
	OpI64AtomicLoad:          {"i64.atomic.load", wasm.PrefixAtomic, 0x11, ImmMemArg},
	OpI32AtomicLoad8U:        {"i32.atomic.load8_u", wasm.PrefixAtomic, 0x12, ImmMemArg},
	OpI32AtomicLoad16U:       {"i32.atomic.load16_u", wasm.PrefixAtomic, 0x13, ImmMemArg},
	OpI64AtomicLoad8U:        {"i64.atomic.load8_u", wasm.PrefixAtomic, 0x14, ImmMemArg},
	OpI64AtomicLoad16U:       {"i64.atomic.load16_u", wasm.PrefixAtomic, 0x15, ImmMemArg},
	OpI64AtomicLoad32U:       {"i64.atomic.load32_u", wasm.PrefixAtomic, 0x16, ImmMemArg},
	OpI32AtomicStore:         {"i32.atomic.store", wasm.PrefixAtomic, 0x17, ImmMemArg},
	OpI64AtomicStore:         {"i64.atomic.store", wasm.PrefixAtomic, 0x18, ImmMemArg},
	OpI32AtomicStore8:        {"i32.atomic.store8", wasm.PrefixAtomic, 0x19, ImmMemArg},
	OpI32AtomicStore16:       {"i32.atomic.store16", wasm.PrefixAtomic, 0x1A, ImmMemArg},
	OpI64AtomicStore8:        {"i64.atomic.store8", wasm.PrefixAtomic, 0x1B, ImmMemArg},
	OpI64AtomicStore16:       {"i64.atomic.store16", wasm.PrefixAtomic, 0x1C, ImmMemArg},
	OpI64AtomicStore32:       {"i64.atomic.store32", wasm.PrefixAtomic, 0x1D, ImmMemArg},
	OpI32AtomicRmwAdd:        {"i32.atomic.rmw.add", wasm.PrefixAtomic, 0x1E, ImmMemArg},
	OpI64AtomicRmwAdd:        {"i64.atomic.rmw.add", wasm.PrefixAtomic, 0x1F, ImmMemArg},
	OpI32AtomicRmw8AddU:      {"i32.atomic.rmw8.add_u", wasm.PrefixAtomic, 0x20, ImmMemArg},
	OpI32AtomicRmw16AddU:     {"i32.atomic.rmw16.add_u", wasm.PrefixAtomic, 0x21, ImmMemArg},
	OpI64AtomicRmw8AddU:      {"i64.atomic.rmw8.add_u", wasm.PrefixAtomic, 0x22, ImmMemArg},
	OpI64AtomicRmw16AddU:     {"i64.atomic.rmw16.add_u", wasm.PrefixAtomic, 0x23, ImmMemArg},
	OpI64AtomicRmw32AddU:     {"i64.atomic.rmw32.add_u", wasm.PrefixAtomic, 0x24, ImmMemArg},
	OpI32AtomicRmwSub:        {"i32.atomic.rmw.sub", wasm.PrefixAtomic, 0x25, ImmMemArg},
	OpI64AtomicRmwSub:        {"i64.atomic.rmw.sub", wasm.PrefixAtomic, 0x26, ImmMemArg},
	OpI32AtomicRmw8SubU:      {"i32.atomic.rmw8.sub_u", wasm.PrefixAtomic, 0x27, ImmMemArg},
	OpI32AtomicRmw16SubU:     {"i32.atomic.rmw16.sub_u", wasm.PrefixAtomic, 0x28, ImmMemArg},
	OpI64AtomicRmw8SubU:      {"i64.atomic.rmw8.sub_u", wasm.PrefixAtomic, 0x29, ImmMemArg},
	OpI64AtomicRmw16SubU:     {"i64.atomic.rmw16.sub_u", wasm.PrefixAtomic, 0x2A, ImmMemArg},
	OpI64AtomicRmw32SubU:     {"i64.atomic.rmw32.sub_u", wasm.PrefixAtomic, 0x2B, ImmMemArg},
	OpI32AtomicRmwAnd:        {"i32.atomic.rmw.and", wasm.PrefixAtomic, 0x2C, ImmMemArg},
	OpI64AtomicRmwAnd:        {"i64.atomic.rmw.and", wasm.PrefixAtomic, 0x2D, ImmMemArg},
	OpI32AtomicRmw8AndU:      {"i32.atomic.rmw8.and_u", wasm.PrefixAtomic, 0x2E, ImmMemArg},
	OpI32AtomicRmw16AndU:     {"i32.atomic.rmw16.and_u", wasm.PrefixAtomic, 0x2F, ImmMemArg},
	OpI64AtomicRmw8AndU:      {"i64.atomic.rmw8.and_u", wasm.PrefixAtomic, 0x30, ImmMemArg},
	OpI64AtomicRmw16AndU:     {"i64.atomic.rmw16.and_u", wasm.PrefixAtomic, 0x31, ImmMemArg},
	OpI64AtomicRmw32AndU:     {"i64.atomic.rmw32.and_u", wasm.PrefixAtomic, 0x32, ImmMemArg},
	OpI32AtomicRmwOr:         {"i32.atomic.rmw.or", wasm.PrefixAtomic, 0x33, ImmMemArg},
	OpI64AtomicRmwOr:         {"i64.atomic.rmw.or", wasm.PrefixAtomic, 0x34, ImmMemArg},
	OpI32AtomicRmw8OrU:       {"i32.atomic.rmw8.or_u", wasm.PrefixAtomic, 0x35, ImmMemArg},
	OpI32AtomicRmw16OrU:      {"i32.atomic.rmw16.or_u", wasm.PrefixAtomic, 0x36, ImmMemArg},
	OpI64AtomicRmw8OrU:       {"i64.atomic.rmw8.or_u", wasm.PrefixAtomic, 0x37, ImmMemArg},
	OpI64AtomicRmw16OrU:      {"i64.atomic.rmw16.or_u", wasm.PrefixAtomic, 0x38, ImmMemArg},
	OpI64AtomicRmw32OrU:      {"i64.atomic.rmw32.or_u", wasm.PrefixAtomic, 0x39, ImmMemArg},
	OpI32AtomicRmwXor:        {"i32.atomic.rmw.xor", wasm.PrefixAtomic, 0x3A, ImmMemArg},
	OpI64AtomicRmwXor:        {"i64.atomic.rmw.xor", wasm.PrefixAtomic, 0x3B, ImmMemArg},
	OpI32AtomicRmw8XorU:      {"i32.atomic.rmw8.xor_u", wasm.PrefixAtomic, 0x3C, ImmMemArg},
	OpI32AtomicRmw16XorU:     {"i32.atomic.rmw16.xor_u", wasm.PrefixAtomic, 0x3D, ImmMemArg},
	OpI64AtomicRmw8XorU:      {"i64.atomic.rmw8.xor_u", wasm.PrefixAtomic, 0x3E, ImmMemArg},
	OpI64AtomicRmw16XorU:     {"i64.atomic.rmw16.xor_u", wasm.PrefixAtomic, 0x3F, ImmMemArg},
	OpI64AtomicRmw32XorU:     {"i64.atomic.rmw32.xor_u", wasm.PrefixAtomic, 0x40, ImmMemArg},
	OpI32AtomicRmwXchg:       {"i32.atomic.rmw.xchg", wasm.PrefixAtomic, 0x41, ImmMemArg},
	OpI64AtomicRmwXchg:       {"i64.atomic.rmw.xchg", wasm.PrefixAtomic, 0x42, ImmMemArg},
	OpI32AtomicRmw8XchgU:     {"i32.atomic.rmw8.xchg_u", wasm.PrefixAtomic, 0x43, ImmMemArg},
	OpI32AtomicRmw16XchgU:    {"i32.atomic.rmw16.xchg_u", wasm.PrefixAtomic, 0x44, ImmMemArg},
	OpI64AtomicRmw8XchgU:     {"i64.atomic.rmw8.xchg_u", wasm.PrefixAtomic, 0x45, ImmMemArg},
	OpI64AtomicRmw16XchgU:    {"i64.atomic.rmw16.xchg_u", wasm.PrefixAtomic, 0x46, ImmMemArg},
	OpI64AtomicRmw32XchgU:    {"i64.atomic.rmw32.xchg_u", wasm.PrefixAtomic, 0x47, ImmMemArg},
	OpI32AtomicRmwCmpxchg:    {"i32.atomic.rmw.cmpxchg", wasm.PrefixAtomic, 0x48, ImmMemArg},
	OpI64AtomicRmwCmpxchg:    {"i64.atomic.rmw.cmpxchg", wasm.PrefixAtomic, 0x49, ImmMemArg},
	OpI32AtomicRmw8CmpxchgU:  {"i32.atomic.rmw8.cmpxchg_u", wasm.PrefixAtomic, 0x4A, ImmMemArg},
	OpI32AtomicRmw16CmpxchgU: {"i32.atomic.rmw16.cmpxchg_u", wasm.PrefixAtomic, 0x4B, ImmMemArg},
	OpI64AtomicRmw8CmpxchgU:  {"i64.atomic.rmw8.cmpxchg_u", wasm.PrefixAtomic, 0x4C, ImmMemArg},
	OpI64AtomicRmw16CmpxchgU: {"i64.atomic.rmw16.cmpxchg_u", wasm.PrefixAtomic, 0x4D, ImmMemArg},
	OpI64AtomicRmw32CmpxchgU: {"i64.atomic.rmw32.cmpxchg_u", wasm.PrefixAtomic, 0x4E, ImmMemArg},
}
