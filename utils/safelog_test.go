package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskingInProduction(t *testing.T) {
	orig := IsProduction
	IsProduction = true
	t.Cleanup(func() { IsProduction = orig })

	assert.Equal(t, "***@***.***", MaskEmail("user@example.com"))
	assert.Equal(t, "***", MaskPhone("+91 98765 43210"))
	assert.Equal(t, "***@okbank", MaskUPIAddress("merchant@okbank"))
	assert.Equal(t, "***", MaskUPIAddress("nohandle"))

	masked := MaskString("reach me at user@example.com or pay merchant@okbank")
	assert.NotContains(t, masked, "user@example.com")
	assert.NotContains(t, masked, "merchant@okbank")
}

func TestMaskingOffInDevelopment(t *testing.T) {
	orig := IsProduction
	IsProduction = false
	t.Cleanup(func() { IsProduction = orig })

	assert.Equal(t, "user@example.com", MaskEmail("user@example.com"))
	assert.Equal(t, "merchant@okbank", MaskUPIAddress("merchant@okbank"))
	assert.Equal(t, "anything", MaskString("anything"))
}
