package flatbuffers

import (
	"github.com/apache/arrow/go/arrow/memory"
	"golang.org/x/xerrors"
)

// Builder is a state machine for creating FlatBuffer objects.
// Use a Builder to construct object(s) starting from leaf nodes.
//
// A Builder constructs byte buffers in a last-first manner for simplicity and
// performance: the buffer grows from its end towards its start, and every
// position handed out is measured from the end so it stays valid when the
// buffer is reallocated.
//
// A Builder is not safe for concurrent use. Use one Builder per goroutine.
type Builder struct {
	// `Bytes` gives raw access to the buffer. Most users will want to use
	// FinishedBytes() instead.
	Bytes []byte

	mem       memory.Allocator // 缓冲区内存的来源，扩容和 Release 时使用
	minalign  int              // 迄今为止用到的最大对齐
	vtable    []UOffsetT       // field positions of the open table, indexed by slot
	objectEnd UOffsetT         // 当前表的末端，不含其前导填充
	vtables   vtableCache      // 已写出的 vtable，按内容哈希索引以便去重
	scratch   []byte
	head      UOffsetT

	nested        bool
	inObject      bool
	finished      bool
	forceDefaults bool

	sharedStrings map[string]UOffsetT
}

// NewBuilder initializes a Builder of size `initialSize`.
// The internal buffer is grown as needed.
func NewBuilder(initialSize int) *Builder {
	return NewBuilderWithAllocator(memory.DefaultAllocator, initialSize)
}

// NewBuilderWithAllocator is like NewBuilder but takes the buffer memory from
// mem. Call Release to hand the memory back once the finished bytes are no
// longer referenced.
func NewBuilderWithAllocator(mem memory.Allocator, initialSize int) *Builder {
	if initialSize <= 0 {
		initialSize = 0
	}

	b := &Builder{mem: mem}
	b.Bytes = mem.Allocate(initialSize)
	b.head = UOffsetT(initialSize)
	b.minalign = 1
	return b
}

// ForceDefaults makes the builder store scalar fields even when they are
// equal to their default. The default is to elide them, which keeps buffers
// small and lets readers fall back to the schema default. The setting applies
// to every table built afterwards, so it should be chosen once per buffer.
func (b *Builder) ForceDefaults(force bool) {
	b.forceDefaults = force
}

// Reset truncates the underlying Builder buffer, facilitating alloc-free
// reuse of a Builder. It also resets bookkeeping data. Offsets obtained
// before Reset must not be used afterwards.
func (b *Builder) Reset() {
	if b.Bytes != nil {
		b.Bytes = b.Bytes[:cap(b.Bytes)]
	}

	if b.vtable != nil {
		b.vtable = b.vtable[:0]
	}
	b.vtables.reset()

	for k := range b.sharedStrings {
		delete(b.sharedStrings, k)
	}

	b.head = UOffsetT(len(b.Bytes))
	b.minalign = 1
	b.nested = false
	b.inObject = false
	b.finished = false
}

// Release returns the buffer memory to the allocator. The Builder and any
// slice returned by FinishedBytes must not be used afterwards.
func (b *Builder) Release() {
	if b.Bytes != nil {
		b.mem.Free(b.Bytes)
		b.Bytes = nil
	}
	b.Reset()
}

// FinishedBytes returns a pointer to the written data in the byte buffer.
// Panics if the builder is not in a finished state (which is caused by calling
// `Finish()`).
func (b *Builder) FinishedBytes() []byte {
	b.assertFinished()
	return b.Bytes[b.Head():]
}

// StartObject initializes bookkeeping for writing a new object.
//
// Fields should be added most aligned first. Generated bindings rely on
// that order: it leaves no padding between fields, so tables of the same
// shape get equal vtables and share one.
//
// StartObject 开始写一个表：标记嵌套状态，按字段数（numfields，含废弃字段）
// 准备 vtable，并把当前偏移记为表的末端 objectEnd。之后每写一个字段，
// Slot 把该字段的偏移记到 vtable 对应的槽位里，EndObject 时再据此生成 vtable。
func (b *Builder) StartObject(numfields int) {
	b.assertNotNested()
	b.nested = true
	b.inObject = true

	// use 32-bit offsets so that arithmetic doesn't overflow.
	if cap(b.vtable) < numfields || b.vtable == nil {
		b.vtable = make([]UOffsetT, numfields)
	} else {
		b.vtable = b.vtable[:numfields]
		for i := 0; i < len(b.vtable); i++ {
			b.vtable[i] = 0
		}
	}

	b.objectEnd = b.Offset()
}

// EndObject writes data necessary to finish object construction.
//
// EndObject 写入表头的 soffset 以及 vtable（或复用一个已有的相同 vtable），
// 返回表的起始偏移，供父表或 Finish 引用。
func (b *Builder) EndObject() UOffsetT {
	b.assertInObject()
	n := b.WriteVtable()
	b.nested = false
	b.inObject = false
	return n
}

// growByteBuffer doubles the size of the buffer and copies the old data
// towards the end of the new one, since we build the buffer backwards.
//
// 由于数据从后往前写，扩容时旧数据被拷贝到新缓冲区的尾部，前半部分清零。
// 所有偏移都从缓冲区末尾算起，所以扩容后已经拿到的偏移依然有效。
// 新内存取自 allocator，旧内存随即归还。
func (b *Builder) growByteBuffer() {
	if (int64(len(b.Bytes)) & int64(0xC0000000)) != 0 {
		panic(ErrBufferTooLarge)
	}
	newLen := len(b.Bytes) * 2
	if newLen == 0 {
		newLen = 1
	}

	grown := b.mem.Allocate(newLen)
	middle := newLen - len(b.Bytes)
	for i := range grown[:middle] {
		grown[i] = 0
	}
	copy(grown[middle:], b.Bytes)
	b.mem.Free(b.Bytes)
	b.Bytes = grown
}

// Head gives the start of useful data in the underlying byte buffer.
// Note: unlike other functions, this value is interpreted as from the left.
func (b *Builder) Head() UOffsetT {
	return b.head
}

// Offset relative to the end of the buffer.
func (b *Builder) Offset() UOffsetT {
	return UOffsetT(len(b.Bytes)) - b.head
}

// Pad places zeros at the current offset.
func (b *Builder) Pad(n int) {
	for i := 0; i < n; i++ {
		b.PlaceByte(0)
	}
}

// Prep prepares to write an element of `size` after `additional_bytes`
// have been written, e.g. if you write a string, you need to align such
// the int length field is aligned to SizeInt32, and the string data follows it
// directly.
// If all you need to do is align, `additionalBytes` will be 0.
//
// The first Prep of an open table also aligns the table start to
// SizeSOffsetT. That padding lies outside the table.
//
// Prep 在写入 size 字节的元素之前补齐对齐字节：写完 additionalBytes 之后，
// 该元素的起始位置必须是 size 的倍数。因为是从后往前写，这里计算的是
// 当前偏移 + additionalBytes 距离下一个 size 对齐点还差多少字节。
//
// 对于尚未写入任何字段的表，还要先把表的末端（objectEnd）对齐到 4 字节：
// 字段按对齐从大到小写入时，表内的填充只由字段形状决定，与表之前写了什么无关，
// 同形状的表于是得到相同的 vtable，可以去重。
func (b *Builder) Prep(size, additionalBytes int) {
	// Track the biggest thing we've ever aligned to.
	if size > b.minalign {
		b.minalign = size
	}

	// 表的前导填充：把表起点对齐到 soffset 宽度。
	empty := b.inObject && b.Offset() == b.objectEnd
	lead := 0
	if empty {
		lead = (SizeSOffsetT - int(b.Offset())%SizeSOffsetT) % SizeSOffsetT
	}

	// Find the amount of alignment needed such that `size` is properly
	// aligned after `additionalBytes`:
	alignSize := (^(len(b.Bytes) - int(b.Head()) + lead + additionalBytes)) + 1
	alignSize &= (size - 1)
	alignSize += lead

	// Reallocate the buffer if needed:
	// 剩余空间（head）不足以容纳 填充 + 元素 + 附加字节 时，成倍扩容。
	for int(b.head) <= alignSize+size+additionalBytes {
		oldBufSize := len(b.Bytes)
		b.growByteBuffer()
		b.head += UOffsetT(len(b.Bytes) - oldBufSize)
	}

	b.Pad(alignSize)
	// Padding in front of the first field is not part of the table, so
	// equal shapes produce equal vtables whatever came before them.
	if empty {
		b.objectEnd = b.Offset()
	}
}

// Prepend aligns for and writes a scalar.
func Prepend[T Scalar](b *Builder, x T) {
	n := SizeOf[T]()
	b.Prep(n, 0)
	Place(b, x)
}

// Place writes a scalar without alignment or growth checks; the caller must
// have called Prep.
func Place[T Scalar](b *Builder, x T) {
	b.head -= UOffsetT(SizeOf[T]())
	WriteScalar(b.Bytes[b.head:], x)
}

// PlaceByte writes a single byte; see Place.
func (b *Builder) PlaceByte(x byte) {
	b.head--
	b.Bytes[b.head] = x
}

// PlaceUOffsetT writes a raw uoffset; see Place.
func (b *Builder) PlaceUOffsetT(x UOffsetT) {
	b.head -= UOffsetT(SizeUOffsetT)
	WriteUOffsetT(b.Bytes[b.head:], x)
}

// PrependUOffsetT prepends an UOffsetT, relative to where it will be written.
// off must refer to data that has already been written to this buffer.
func (b *Builder) PrependUOffsetT(off UOffsetT) {
	b.Prep(SizeUOffsetT, 0) // Ensure alignment is already done.
	if off == 0 || off > b.Offset() {
		panic(xerrors.Errorf("target %d with buffer at %d: %w", off, b.Offset(), ErrOffsetOverflow))
	}
	off2 := b.Offset() - off + UOffsetT(SizeUOffsetT)
	if off2 > MaxBufferSize {
		panic(xerrors.Errorf("relative offset %d: %w", off2, ErrOffsetOverflow))
	}
	b.PlaceUOffsetT(off2)
}

// PrependSlot writes a scalar field of the open table. The value is elided
// when it equals the default d, unless ForceDefaults is on.
//
// Call it for the widest fields first; see StartObject.
//
// 值等于默认值时不写入，槽位保持为 0，读取时回落到默认值。
func PrependSlot[T Scalar](b *Builder, slot int, x, d T) {
	if x != d || b.forceDefaults {
		Prepend(b, x)
		b.Slot(slot)
	}
}

// PrependUOffsetTSlot writes a reference field of the open table. An off of
// zero means the field is absent and nothing is written.
func (b *Builder) PrependUOffsetTSlot(slot int, off UOffsetT) {
	if off == 0 {
		return
	}
	b.assertInObject()
	if off > b.objectEnd {
		panic(xerrors.Errorf("slot %d references %d inside the open table: %w", slot, off, ErrScope))
	}
	b.PrependUOffsetT(off)
	b.Slot(slot)
}

// PrependStructSlot records a struct that has just been written inline into
// the open table. x must be the current offset; d (usually 0) marks absence.
func (b *Builder) PrependStructSlot(slot int, x, d UOffsetT) {
	if x != d {
		b.assertInObject()
		if x != b.Offset() {
			panic(xerrors.Errorf("inline data write outside of object: %w", ErrScope))
		}
		b.Slot(slot)
	}
}

// Slot sets the vtable key `slot` to the current location in the buffer.
//
// 这里记录的是从缓冲区末尾算起的偏移，WriteVtable 时才换算成相对表头的 voffset。
func (b *Builder) Slot(slot int) {
	b.assertInObject()
	b.vtable[slot] = b.Offset()
}

// StartVector initializes bookkeeping for writing a new vector.
//
// A vector has the following format:
//
//	<UOffsetT: number of elements in this vector>
//	<T: data>+, where T is the type of elements of this vector.
//
// 先按 4 字节对齐长度字段，再按元素对齐，元素随后从后往前逐个 Place，
// 最后由 EndVector 写入长度。
func (b *Builder) StartVector(elemSize, numElems, alignment int) UOffsetT {
	b.assertNotNested()
	b.nested = true

	b.Prep(SizeUint32, elemSize*numElems)
	b.Prep(alignment, elemSize*numElems) // Just in case alignment > int.
	return b.Offset()
}

// EndVector writes data necessary to finish vector construction.
func (b *Builder) EndVector(vectorNumElems int) UOffsetT {
	b.assertNested()
	if b.inObject {
		panic(xerrors.Errorf("EndVector inside object: %w", ErrNested))
	}

	// we already made space for this, so write without PrependUint32
	b.PlaceUOffsetT(UOffsetT(vectorNumElems))

	b.nested = false
	return b.Offset()
}

// CreateVector writes a vector of scalars.
func CreateVector[T Scalar](b *Builder, v []T) UOffsetT {
	n := SizeOf[T]()
	b.StartVector(n, len(v), n)
	for i := len(v) - 1; i >= 0; i-- {
		Place(b, v[i])
	}
	return b.EndVector(len(v))
}

// CreateUOffsetVector writes a vector of references to already finished
// tables or strings.
func (b *Builder) CreateUOffsetVector(offs []UOffsetT) UOffsetT {
	start := b.StartVector(SizeUOffsetT, len(offs), SizeUOffsetT)
	for i := len(offs) - 1; i >= 0; i-- {
		if offs[i] > start {
			panic(xerrors.Errorf("element %d references %d: %w", i, offs[i], ErrScope))
		}
		b.PrependUOffsetT(offs[i])
	}
	return b.EndVector(len(offs))
}

// CreateString writes a null-terminated string as a vector.
//
// 字符串在线上就是一个 ubyte vector，末尾多一个 0 字节，
// 长度字段不计入这个结尾的 0。
func (b *Builder) CreateString(s string) UOffsetT {
	b.assertNotNested()
	b.nested = true

	b.Prep(SizeUOffsetT, (len(s)+1)*SizeByte)
	b.PlaceByte(0)

	l := UOffsetT(len(s))

	b.head -= l
	copy(b.Bytes[b.head:b.head+l], s)

	return b.EndVector(len(s))
}

// CreateSharedString writes s once per buffer; later calls with an equal
// string return the offset of the first copy.
func (b *Builder) CreateSharedString(s string) UOffsetT {
	if b.sharedStrings == nil {
		b.sharedStrings = make(map[string]UOffsetT)
	}
	if off, ok := b.sharedStrings[s]; ok {
		return off
	}
	off := b.CreateString(s)
	b.sharedStrings[s] = off
	return off
}

// CreateByteString writes a byte slice as a string (null-terminated).
func (b *Builder) CreateByteString(s []byte) UOffsetT {
	b.assertNotNested()
	b.nested = true

	b.Prep(SizeUOffsetT, (len(s)+1)*SizeByte)
	b.PlaceByte(0)

	l := UOffsetT(len(s))

	b.head -= l
	copy(b.Bytes[b.head:b.head+l], s)

	return b.EndVector(len(s))
}

// CreateByteVector writes a ubyte vector
func (b *Builder) CreateByteVector(v []byte) UOffsetT {
	b.assertNotNested()
	b.nested = true

	b.Prep(SizeUOffsetT, len(v)*SizeByte)

	l := UOffsetT(len(v))

	b.head -= l
	copy(b.Bytes[b.head:b.head+l], v)

	return b.EndVector(len(v))
}

// Finish finalizes a buffer, pointing to the given `rootTable`.
func (b *Builder) Finish(rootTable UOffsetT) {
	b.finish(rootTable, nil, false)
}

// FinishWithFileIdentifier finalizes a buffer, pointing to the given
// `rootTable`, and places the 4-byte identifier `fid` after the root offset.
func (b *Builder) FinishWithFileIdentifier(rootTable UOffsetT, fid []byte) {
	if len(fid) != FileIdentifierLength {
		panic(ErrIdentifier)
	}
	b.finish(rootTable, fid, false)
}

// FinishSizePrefixed finalizes a buffer and prepends its byte length.
func (b *Builder) FinishSizePrefixed(rootTable UOffsetT) {
	b.finish(rootTable, nil, true)
}

// FinishSizePrefixedWithFileIdentifier combines FinishSizePrefixed and
// FinishWithFileIdentifier.
func (b *Builder) FinishSizePrefixedWithFileIdentifier(rootTable UOffsetT, fid []byte) {
	if len(fid) != FileIdentifierLength {
		panic(ErrIdentifier)
	}
	b.finish(rootTable, fid, true)
}

// finish 写入根偏移，以及可选的文件标识和长度前缀。
// 对齐取整个 buffer 用过的最大对齐，这样读取方把 buffer 放在任意
// 按该值对齐的地址上，里面的所有标量都是对齐的。
func (b *Builder) finish(rootTable UOffsetT, fid []byte, sizePrefix bool) {
	b.assertNotNested()
	extra := SizeUOffsetT
	if fid != nil {
		extra += FileIdentifierLength
	}
	if sizePrefix {
		extra += SizeUint32
	}
	b.Prep(max(b.minalign, SizeUOffsetT), extra)
	for i := len(fid) - 1; i >= 0; i-- {
		b.PlaceByte(fid[i])
	}
	b.PrependUOffsetT(rootTable)
	if sizePrefix {
		Place(b, uint32(b.Offset()))
	}
	b.finished = true
}

func (b *Builder) assertNested() {
	// If you get this assert, you're in an object while trying to write
	// data that belongs outside of an object.
	// To fix this, write non-inline data (like vectors) before creating
	// objects.
	if !b.nested {
		panic(ErrNotNested)
	}
}

func (b *Builder) assertInObject() {
	if !b.inObject {
		panic(ErrNotNested)
	}
}

func (b *Builder) assertNotNested() {
	// If you hit this, you're trying to construct a Table/Vector/String
	// during the construction of its parent table (between the MyTableBuilder
	// and builder.Finish()).
	// Move the creation of these sub-objects to above the MyTableBuilder to
	// not get this assert.
	// Ignoring this assert may appear to work in simple cases, but the reason
	// it is here is that storing objects in-line may cause vtable offsets
	// to not fit anymore. It also leads to vtable duplication.
	if b.nested {
		panic(ErrNested)
	}
}

func (b *Builder) assertFinished() {
	if !b.finished {
		panic(ErrNotFinished)
	}
}
