package readfiles

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var (
	ErrMalformedMesh      = errors.New("readfiles: malformed SU2 mesh")
	ErrUnsupportedElement = errors.New("readfiles: unsupported SU2 element")
)

// From here: https://su2code.github.io/docs_v7/Mesh-File/
type SU2ElementType uint8

const (
	ELType_LINE          SU2ElementType = 3
	ELType_Triangle      SU2ElementType = 5
	ELType_Quadrilateral SU2ElementType = 9
	ELType_Tetrahedral   SU2ElementType = 10
	ELType_Hexahedral    SU2ElementType = 12
	ELType_Prism         SU2ElementType = 13
	ELType_Pyramid       SU2ElementType = 14
)

// NumVertices is zero for unknown element types
func (et SU2ElementType) NumVertices() int {
	switch et {
	case ELType_LINE:
		return 2
	case ELType_Triangle:
		return 3
	case ELType_Quadrilateral, ELType_Tetrahedral:
		return 4
	case ELType_Pyramid:
		return 5
	case ELType_Prism:
		return 6
	case ELType_Hexahedral:
		return 8
	}
	return 0
}

// simplexType is the element type of a full dimensional simplex
func simplexType(dim int) (et SU2ElementType, ok bool) {
	switch dim {
	case 1:
		return ELType_LINE, true
	case 2:
		return ELType_Triangle, true
	case 3:
		return ELType_Tetrahedral, true
	}
	return 0, false
}

// SU2Mesh is a mesh of simplices with zero based vertex indices
type SU2Mesh struct {
	Dim       int
	Points    [][]float64
	Simplices [][]int
	Markers   map[string][][]int // Boundary elements by marker tag
}

func ReadSU2(filename string, verbose bool) (mesh *SU2Mesh, err error) {
	var (
		file *os.File
	)
	if verbose {
		fmt.Printf("Reading SU2 file named: %s\n", filename)
	}
	if file, err = os.Open(filename); err != nil {
		return nil, fmt.Errorf("unable to open file %s: %w", filename, err)
	}
	defer file.Close()
	if mesh, err = ParseSU2(bufio.NewReader(file)); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	if verbose {
		fmt.Printf("Read file with %d dimensional data, %d points and %d simplices\n",
			mesh.Dim, len(mesh.Points), len(mesh.Simplices))
	}
	return
}

// ParseSU2 reads the NDIME, NELEM and NPOIN sections and the optional NMARK section, in that order.
func ParseSU2(reader *bufio.Reader) (mesh *SU2Mesh, err error) {
	mesh = &SU2Mesh{}
	if mesh.Dim, err = readNumber(reader, "NDIME"); err != nil {
		return nil, err
	}
	et, ok := simplexType(mesh.Dim)
	if !ok {
		return nil, fmt.Errorf("%w: dimension %d", ErrUnsupportedElement, mesh.Dim)
	}
	if mesh.Simplices, err = readElements(reader, et); err != nil {
		return nil, err
	}
	if mesh.Points, err = readVertices(reader, mesh.Dim); err != nil {
		return nil, err
	}
	if mesh.Markers, err = readMarkers(reader); err != nil {
		return nil, err
	}
	return
}

func readElements(reader *bufio.Reader, et SU2ElementType) (elements [][]int, err error) {
	var K int
	if K, err = readNumber(reader, "NELEM"); err != nil {
		return
	}
	elements = make([][]int, K)
	for k := 0; k < K; k++ {
		var line string
		if line, err = getLine(reader); err != nil {
			return
		}
		if elements[k], err = parseElement(line, et); err != nil {
			return nil, fmt.Errorf("element %d: %w", k, err)
		}
	}
	return
}

// parseElement reads "type v1 ... vn [index]", requiring the type to be et when et is non zero
func parseElement(line string, et SU2ElementType) (verts []int, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty element line", ErrMalformedMesh)
	}
	var nType int
	if nType, err = strconv.Atoi(fields[0]); err != nil {
		return nil, fmt.Errorf("%w: element type [%s]", ErrMalformedMesh, fields[0])
	}
	lt := SU2ElementType(nType)
	if et != 0 && lt != et {
		return nil, fmt.Errorf("%w: type %d, only type %d is a simplex of this dimension",
			ErrUnsupportedElement, nType, et)
	}
	nv := lt.NumVertices()
	if nv == 0 {
		return nil, fmt.Errorf("%w: type %d", ErrUnsupportedElement, nType)
	}
	if len(fields) < nv+1 {
		return nil, fmt.Errorf("%w: type %d needs %d vertices, have [%s]", ErrMalformedMesh, nType, nv, line)
	}
	verts = make([]int, nv)
	for i := range verts {
		if verts[i], err = strconv.Atoi(fields[i+1]); err != nil {
			return nil, fmt.Errorf("%w: vertex index [%s]", ErrMalformedMesh, fields[i+1])
		}
	}
	return
}

func readVertices(reader *bufio.Reader, dim int) (pts [][]float64, err error) {
	var Nv int
	if Nv, err = readNumber(reader, "NPOIN"); err != nil {
		return
	}
	pts = make([][]float64, Nv)
	for i := 0; i < Nv; i++ {
		var line string
		if line, err = getLine(reader); err != nil {
			return
		}
		fields := strings.Fields(line)
		if len(fields) < dim {
			return nil, fmt.Errorf("%w: point %d needs %d coordinates, have [%s]", ErrMalformedMesh, i, dim, line)
		}
		pts[i] = make([]float64, dim)
		for j := 0; j < dim; j++ {
			if pts[i][j], err = strconv.ParseFloat(fields[j], 64); err != nil {
				return nil, fmt.Errorf("%w: point %d coordinate [%s]", ErrMalformedMesh, i, fields[j])
			}
		}
	}
	return
}

func readMarkers(reader *bufio.Reader) (markers map[string][][]int, err error) {
	var (
		NBCs int
		line string
	)
	markers = make(map[string][][]int)
	if line, err = getLineNoComments(reader); err != nil {
		if errors.Is(err, io.EOF) { // No boundary markers
			err = nil
		}
		return
	}
	if NBCs, err = parseNumber(line, "NMARK"); err != nil {
		return
	}
	for n := 0; n < NBCs; n++ {
		var (
			label  string
			nElems int
		)
		if label, err = readLabel(reader, "MARKER_TAG"); err != nil {
			return
		}
		if _, ok := markers[label]; ok {
			return nil, fmt.Errorf("%w: duplicate marker [%s]", ErrMalformedMesh, label)
		}
		if nElems, err = readNumber(reader, "MARKER_ELEMS"); err != nil {
			return
		}
		markers[label] = make([][]int, nElems)
		for i := 0; i < nElems; i++ {
			if line, err = getLine(reader); err != nil {
				return
			}
			if markers[label][i], err = parseElement(line, 0); err != nil {
				return nil, fmt.Errorf("marker %s element %d: %w", label, i, err)
			}
		}
	}
	return
}

// getToken returns what follows the "=" of a "KEYWORD= value" line
func getToken(line, keyword string) (token string, err error) {
	ind := strings.Index(line, "=")
	if ind < 0 {
		return "", fmt.Errorf("%w: badly formed input line [%s], should have an =", ErrMalformedMesh, line)
	}
	if key := strings.TrimSpace(line[:ind]); key != keyword {
		return "", fmt.Errorf("%w: expected %s, have [%s]", ErrMalformedMesh, keyword, key)
	}
	token = strings.TrimSpace(line[ind+1:])
	return
}

func parseNumber(line, keyword string) (num int, err error) {
	var token string
	if token, err = getToken(line, keyword); err != nil {
		return
	}
	if num, err = strconv.Atoi(token); err != nil || num < 0 {
		return 0, fmt.Errorf("%w: unable to read number from token [%s]", ErrMalformedMesh, token)
	}
	return
}

func readNumber(reader *bufio.Reader, keyword string) (num int, err error) {
	var line string
	if line, err = getLineNoComments(reader); err != nil {
		return
	}
	return parseNumber(line, keyword)
}

func readLabel(reader *bufio.Reader, keyword string) (label string, err error) {
	var line string
	if line, err = getLineNoComments(reader); err != nil {
		return
	}
	if label, err = getToken(line, keyword); err != nil {
		return
	}
	if len(label) == 0 {
		err = fmt.Errorf("%w: empty %s", ErrMalformedMesh, keyword)
	}
	return
}

// getLineNoComments skips blank lines and lines starting with %
func getLineNoComments(reader *bufio.Reader) (line string, err error) {
	for {
		if line, err = getLine(reader); err != nil {
			return
		}
		line = strings.TrimSpace(line)
		if len(line) != 0 && !strings.HasPrefix(line, "%") {
			return
		}
	}
}

// getLine returns io.EOF only when no characters remain
func getLine(reader *bufio.Reader) (line string, err error) {
	line, err = reader.ReadString('\n')
	if err == io.EOF && len(line) != 0 {
		err = nil
	}
	line = strings.TrimRight(line, "\r\n")
	return
}
