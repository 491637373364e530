package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDepartments(t *testing.T) {
	deps, err := Departments()
	require.NoError(t, err)
	assert.Len(t, deps, 101)
	assert.Equal(t, "01", deps[0].Code)
}

func TestLookupDepartment(t *testing.T) {
	d, ok := LookupDepartment("2A")
	require.True(t, ok)
	assert.Equal(t, "Corse-du-Sud", d.Name)

	assert.True(t, IsDepartmentCode("974"))
	assert.False(t, IsDepartmentCode("20"))
	assert.False(t, IsDepartmentCode(""))
}
