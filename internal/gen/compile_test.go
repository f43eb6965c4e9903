package gen

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sbe-schema-generator/internal/schema"
)

func populatedStore(t *testing.T, dir string) *schema.Store {
	t.Helper()

	h := testHeader()
	st, err := schema.Open("MD", &h, schema.Config{Dir: dir})
	require.NoError(t, err)

	err = st.Batch(func() error {
		if _, err := st.AddMessage("Trade", 1); err != nil {
			return err
		}

		price := schema.SbeFieldDef{ID: 1, Name: "Price", DataType: "uint32", Presence: schema.PresenceRequired}
		if _, err := st.AddPrimitiveType(schema.CollectionNumberTypes, &price); err != nil {
			return err
		}

		if _, err := st.AddSbeField("Trade", price); err != nil {
			return err
		}

		symbol := schema.SbeFieldDef{ID: 2, Name: "Symbol", DataType: "char", Length: 8, Presence: schema.PresenceOptional}
		if _, err := st.AddPrimitiveType(schema.CollectionStringTypes, &symbol); err != nil {
			return err
		}

		if _, err := st.AddSbeField("Trade", symbol); err != nil {
			return err
		}

		if _, err := st.AddCustomType(schema.CollectionEnumTypes, "char", "Side", schema.Structure{{Key: "Buy", Value: "1"}}); err != nil {
			return err
		}

		if _, err := st.AddSbeField("Trade", schema.SbeFieldDef{ID: 3, Name: "Side", DataType: "Side"}); err != nil {
			return err
		}

		if _, err := st.AddCustomType(schema.CollectionSetTypes, "uint8", "Flags", schema.Structure{{Key: "A", Value: "0"}}); err != nil {
			return err
		}

		if _, err := st.AddComposite("decimal", "price"); err != nil {
			return err
		}

		if _, err := st.AddCompositeElement("decimal", schema.Attributes{{Key: "name", Value: "mantissa"}}); err != nil {
			return err
		}

		if _, err := st.AddRepeatingGroup("Trade", "Legs", 100); err != nil {
			return err
		}

		if _, err := st.AddGroupField("Trade", 100, schema.SbeFieldDef{ID: 101, Name: "Leg", DataType: "Missing"}); err != nil {
			return err
		}

		_, err := st.AddMessage("Heartbeat", 2)

		return err
	})
	require.NoError(t, err)

	return st
}

func TestCompile_WholeStore(t *testing.T) {
	dir := t.TempDir()
	st := populatedStore(t, dir)

	cfg := DefaultGeneratorConfig()
	cfg.Dir = dir

	g, diags, err := Compile(st, cfg)
	require.NoError(t, err)

	root := readDoc(t, g.Path()).Root()

	var typeNames []string
	for _, el := range root.SelectElement("types").ChildElements() {
		typeNames = append(typeNames, el.Tag+":"+el.SelectAttrValue("name", ""))
	}

	assert.Equal(t, []string{
		"composite:messageHeader",
		"composite:groupSizeEncoding",
		"composite:groupSizeEncoding16",
		"type:uint32_t",
		"type:char8_optional",
		"enum:Side",
		"set:Flags",
		"composite:decimal",
	}, typeNames)

	msgs := root.SelectElements("sbe:message")
	require.Len(t, msgs, 2)
	assert.Equal(t, "Trade", msgs[0].SelectAttrValue("name", ""))
	assert.Len(t, msgs[0].SelectElements("field"), 4)
	assert.Len(t, msgs[0].SelectElements("group"), 1)
	assert.Equal(t, "Heartbeat", msgs[1].SelectAttrValue("name", ""))

	require.Len(t, diags.Warnings, 1, diags.String())
	assert.Equal(t, CodeUnknownFieldType, diags.Warnings[0].Code)
	assert.Equal(t, "Trade", diags.Warnings[0].Key)
	assert.Contains(t, diags.Warnings[0].Message, `"Missing"`)
}

func TestCompile_WithoutDefaultComposites(t *testing.T) {
	dir := t.TempDir()

	h := testHeader()
	st, err := schema.Open("md", &h, schema.Config{Dir: dir})
	require.NoError(t, err)

	_, err = st.AddMessage("Trade", 1)
	require.NoError(t, err)
	_, err = st.AddSbeField("Trade", schema.SbeFieldDef{ID: 1, Name: "Header", DataType: "messageHeader"})
	require.NoError(t, err)
	_, err = st.AddSbeField("Trade", schema.SbeFieldDef{ID: 2, Name: "Qty", DataType: "int64"})
	require.NoError(t, err)

	cfg := DefaultGeneratorConfig()
	cfg.Dir = dir
	cfg.DefaultComposites = false

	g, diags, err := Compile(st, cfg)
	require.NoError(t, err)

	assert.Empty(t, readDoc(t, g.Path()).Root().SelectElement("types").ChildElements())

	require.Len(t, diags.Warnings, 1)
	assert.Contains(t, diags.Warnings[0].Message, `"messageHeader"`)
}

func TestCompile_UnsupportedNumberTypeAborts(t *testing.T) {
	dir := t.TempDir()

	h := testHeader()
	st, err := schema.Open("md", &h, schema.Config{Dir: dir})
	require.NoError(t, err)

	f := schema.SbeFieldDef{DataType: "double"}
	_, err = st.AddPrimitiveType(schema.CollectionNumberTypes, &f)
	require.NoError(t, err)

	cfg := DefaultGeneratorConfig()
	cfg.Dir = dir

	_, _, err = Compile(st, cfg)
	require.ErrorIs(t, err, ErrUnsupportedPrimitiveType)

	_, err = os.Stat(cfg.Path("md"))
	assert.True(t, os.IsNotExist(err), "nothing is written when compilation fails")
}

func TestCompile_MissingSchema(t *testing.T) {
	cfg := schema.Config{Dir: t.TempDir()}
	require.NoError(t, os.WriteFile(cfg.Path("md"), []byte(`{"other": {}}`), 0o644))

	st, err := schema.Open("md", nil, cfg)
	require.NoError(t, err)

	gcfg := DefaultGeneratorConfig()
	gcfg.Dir = cfg.Dir

	_, _, err = Compile(st, gcfg)
	require.ErrorIs(t, err, schema.ErrEntityNotFound)
}
