package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckIdentifiers(t *testing.T) {
	st, _ := newTestStore(t)

	_, err := st.AddMessage("Trade", 1)
	require.NoError(t, err)
	_, err = st.AddMessage("Quote", 1)
	require.NoError(t, err)
	_, err = st.AddMessage("Status", 3)
	require.NoError(t, err)

	_, err = st.AddSbeField("Trade", SbeFieldDef{ID: 10, Name: "Price", DataType: "uint32"})
	require.NoError(t, err)
	_, err = st.AddSbeField("Trade", SbeFieldDef{ID: 10, Name: "Qty", DataType: "uint32"})
	require.NoError(t, err)
	_, err = st.AddRepeatingGroup("Trade", "Legs", 20)
	require.NoError(t, err)
	_, err = st.AddGroupField("Trade", 20, SbeFieldDef{ID: 20, Name: "LegID", DataType: "uint16"})
	require.NoError(t, err)

	// Ids are scoped to a message.
	_, err = st.AddSbeField("Quote", SbeFieldDef{ID: 10, Name: "Bid", DataType: "int64"})
	require.NoError(t, err)

	diags, err := CheckIdentifiers(st)
	require.NoError(t, err)
	require.True(t, diags.HasErrors())
	require.Len(t, diags.Errors, 3, diags.String())

	assert.Equal(t, CodeDuplicateTemplateID, diags.Errors[0].Code)
	assert.Equal(t, "1", diags.Errors[0].Key)

	assert.Equal(t, CodeDuplicateFieldID, diags.Errors[1].Code)
	assert.Equal(t, "Trade", diags.Errors[1].Key)
	assert.Contains(t, diags.Errors[1].Message, "id 10")
	assert.Contains(t, diags.Errors[2].Message, "id 20")
}

func TestCheckIdentifiersClean(t *testing.T) {
	st, _ := newTestStore(t)

	_, err := st.AddMessage("Trade", 1)
	require.NoError(t, err)
	_, err = st.AddSbeField("Trade", SbeFieldDef{ID: 1, Name: "Price", DataType: "uint32"})
	require.NoError(t, err)

	diags, err := CheckIdentifiers(st)
	require.NoError(t, err)
	assert.True(t, diags.IsValid())
	assert.Zero(t, diags.Len())
}
