package grid

//go:generate enumer -text -type Format -trimprefix Format
//go:generate enumer -text -type NodeLayout -trimprefix NodeLayout
//go:generate enumer -text -type ValueType -trimprefix ValueType
//go:generate enumer -text -type Encoding -trimprefix Encoding
//go:generate enumer -text -type Interpolation -trimprefix Interpolation
//go:generate enumer -text -type LoadMode -trimprefix LoadMode
//go:generate enumer -text -type State -trimprefix State

// Format of a grid file
type Format int

const (
	FormatUNDEFINED  Format = iota
	FormatTAC               // keyword header + ascii nodes
	FormatTBC               // binary counterpart of TAC
	FormatNTV2ASCII         // .gsa
	FormatNTV2BINARY        // .gsb, little or big endian
	FormatGRAVSOFT          // .gri
	FormatEGM               // .egm, .grd (not Surfer)
	FormatESRI              // .asc
	FormatGTXASCII          // .gtxa
	FormatGTXBINARY         // .gtx
	FormatSURFER            // .grd starting with DSAA
	FormatDIS               // .dis node listing
	FormatGDAL              // any raster GDAL can read
)

// NodeLayout is the traversal order of the nodes in a file:
// the starting corner, then the direction that varies fastest, then the other one.
type NodeLayout int

const (
	NodeLayoutUNDEFINED NodeLayout = iota
	NodeLayoutSWNORTHEAST
	NodeLayoutSWEASTNORTH
	NodeLayoutSENORTHWEST
	NodeLayoutSEWESTNORTH
	NodeLayoutNWSOUTHEAST
	NodeLayoutNWEASTSOUTH
	NodeLayoutNESOUTHWEST
	NodeLayoutNEWESTSOUTH
)

// ValueType of the node values of a binary file
type ValueType int

const (
	ValueTypeUNDEFINED ValueType = iota
	ValueTypeINT16
	ValueTypeINT32
	ValueTypeFLOAT32
	ValueTypeFLOAT64
)

// Encoding is the byte order of a binary file
type Encoding int

const (
	EncodingUNDEFINED Encoding = iota
	EncodingLITTLEENDIAN
	EncodingBIGENDIAN
)

type Interpolation int

const (
	InterpolationUNDEFINED Interpolation = iota
	InterpolationBILINEAR
	InterpolationSPLINE
)

// LoadMode tells how much of a grid is loaded and how values are accessed
type LoadMode int

const (
	LoadModeUNDEFINED  LoadMode = iota
	LoadModeHEADERONLY          // metadata only
	LoadModeSTREAMED            // file held open, nodes read on demand
	LoadModeARRAY               // nodes read once in memory, file closed
)

// State of a grid:
// UNLOADED -> HEADERPARSED -> METADATAVALIDATED -> LOADED -> READY, or INVALID
type State int

const (
	StateUNLOADED State = iota
	StateHEADERPARSED
	StateMETADATAVALIDATED
	StateLOADED
	StateREADY
	StateINVALID
)

// Size returns the size of the value type in bytes
func (t ValueType) Size() int {
	switch t {
	case ValueTypeINT16:
		return 2
	case ValueTypeINT32, ValueTypeFLOAT32:
		return 4
	case ValueTypeFLOAT64:
		return 8
	}
	return 0
}

// IsFloatingPointFormat returns true for real value types
func (t ValueType) IsFloatingPointFormat() bool {
	return t == ValueTypeFLOAT32 || t == ValueTypeFLOAT64
}

// IsBinary returns true for the formats whose nodes can be streamed
func (f Format) IsBinary() bool {
	switch f {
	case FormatTBC, FormatNTV2BINARY, FormatGTXBINARY:
		return true
	}
	return false
}
