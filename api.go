// Package qrmatrix builds QR code module matrices for symbol versions 1 to
// 10 in 8-bit byte mode, and renders them to terminals and images.
//
// A Model collects text, computes the Reed-Solomon codewords, places the
// function patterns and picks the data mask with the lowest penalty:
//
//	m := qrmatrix.New(4, qrmatrix.LevelM)
//	m.AddData("https://paepcke.de")
//	if err := m.Make(); err != nil {
//		return err
//	}
//	err := qrmatrix.NewTermDrawer(os.Stdout, 4, qrmatrix.StyleANSI).Draw(m.Matrix())
//
// The version is never chosen automatically, the caller picks one large
// enough for its payload.
package qrmatrix

// Drawer renders finished matrices.
type Drawer interface {
	Draw(m *Matrix) error
	Clear() error
}

// Encode builds the matrix for a single text segment.
func Encode(text string, version int, level Level, opts ...Option) (*Matrix, error) {
	m := New(version, level, opts...)
	m.AddData(text)
	if err := m.Make(); err != nil {
		return nil, err
	}
	return m.Matrix(), nil
}
