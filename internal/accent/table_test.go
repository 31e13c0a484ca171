package accent

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTableIsBuiltOnce(t *testing.T) {
	var wg sync.WaitGroup
	tables := make([]*Table, 8)
	for i := range tables {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tables[i] = Default()
		}(i)
	}
	wg.Wait()

	require.NotNil(t, tables[0])
	assert.Greater(t, tables[0].Len(), 500)
	for _, tbl := range tables[1:] {
		assert.Same(t, tables[0], tbl)
	}
}

func TestConvert(t *testing.T) {
	tbl := Default()
	tests := []struct {
		in   string
		want string
	}{
		{"Tiếng Việt", "Tieng Viet"},
		{"Đà Nẵng", "Da Nang"},
		{"Straße", "Strasse"},
		{"Ærøskøbing", "AEroskobing"},
		{"Łódź", "Lodz"},
		{"Привет", "Privet"},
		{"plain ascii", "plain ascii"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tbl.Convert(tt.in), "Convert(%q)", tt.in)
	}
}

func TestFoldLowercasesAndStripsMarks(t *testing.T) {
	tbl := Default()
	assert.Equal(t, "cafe creme", tbl.Fold("CAFÉ Crème"))
	// decomposed input: bare combining marks fold away
	assert.Equal(t, "cafe", tbl.Fold("cafe\u0301"))
	// Cyrillic soft sign has an empty transliteration
	assert.Equal(t, "mat", tbl.Fold("мать"))
}

func TestFoldIndexedMapsBackToOriginal(t *testing.T) {
	tbl := Default()
	text := "Große Ñandú"
	folded, index := tbl.FoldIndexed(text)
	require.Equal(t, "grosse nandu", folded)
	require.Len(t, index, len(folded))

	// "ss" comes from the two-byte ß
	at := strings.Index(folded, "ss")
	assert.Equal(t, Span{Start: 3, End: 5}, index[at])
	assert.Equal(t, Span{Start: 3, End: 5}, index[at+1])

	start := strings.Index(folded, "nandu")
	end := start + len("nandu")
	assert.Equal(t, "Ñandú", text[index[start].Start:index[end-1].End])
}

func TestLoadCustomTable(t *testing.T) {
	tbl, err := Load(strings.NewReader("[chars]\n\"ä\" = \"a\"\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, tbl.Len())
	assert.Equal(t, "haus", tbl.Fold("Häus"))

	base, ok := tbl.Lookup('ä')
	assert.True(t, ok)
	assert.Equal(t, "a", base)
}

func TestLoadRejectsMultiRuneKeys(t *testing.T) {
	_, err := Load(strings.NewReader("[chars]\n\"ab\" = \"x\"\n"))
	require.Error(t, err)

	_, err = Load(strings.NewReader("[chars\n"))
	require.Error(t, err)
}
