package keywordtest

import "strconv"

type ABC int32

const (
	ABCVoid       ABC = 0
	ABCWhere      ABC = 1
	ABCStackalloc ABC = 2
)

var EnumNamesABC = map[ABC]string{
	ABCVoid:       "void",
	ABCWhere:      "where",
	ABCStackalloc: "stackalloc",
}

var EnumValuesABC = map[string]ABC{
	"void":       ABCVoid,
	"where":      ABCWhere,
	"stackalloc": ABCStackalloc,
}

func (v ABC) String() string {
	if s, ok := EnumNamesABC[v]; ok {
		return s
	}
	return "ABC(" + strconv.FormatInt(int64(v), 10) + ")"
}
