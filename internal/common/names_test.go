package common

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileName(t *testing.T) {
	assert.Equal(t, "md_json_schema.json", FileName("MD", "_JSON_Schema", ExtJSON))
	assert.Equal(t, "md_sbe_xml_schema.xml", FileName("md", "_sbe_xml_schema", ExtXML))
	assert.Equal(t, "md.xml", FileName("Md", "", ExtXML))
}

func TestFilePath(t *testing.T) {
	assert.Equal(t, "md_json_schema.json", FilePath("", "md", "_json_schema", ExtJSON))
	assert.Equal(t, filepath.Join("out", "md_json_schema.json"), FilePath("out", "MD", "_json_schema", ExtJSON))
}
