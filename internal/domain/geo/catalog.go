package geo

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed departments.yaml
var departmentsYAML []byte

// Department is a French administrative department.
type Department struct {
	Code   string `yaml:"code" json:"code"`
	Name   string `yaml:"name" json:"name"`
	Region string `yaml:"region" json:"region"`
}

type catalogFile struct {
	Departments []Department `yaml:"departments"`
}

var (
	catalogOnce sync.Once
	catalog     []Department
	byCode      map[string]Department
	catalogErr  error
)

func loadCatalog() {
	var f catalogFile
	if err := yaml.Unmarshal(departmentsYAML, &f); err != nil {
		catalogErr = fmt.Errorf("parse departments catalog: %w", err)
		return
	}
	catalog = f.Departments
	byCode = make(map[string]Department, len(f.Departments))
	for _, d := range f.Departments {
		byCode[d.Code] = d
	}
}

// Departments returns the catalog in code order.
func Departments() ([]Department, error) {
	catalogOnce.Do(loadCatalog)
	if catalogErr != nil {
		return nil, catalogErr
	}
	out := make([]Department, len(catalog))
	copy(out, catalog)
	return out, nil
}

// LookupDepartment returns the department with the given code.
func LookupDepartment(code string) (Department, bool) {
	catalogOnce.Do(loadCatalog)
	d, ok := byCode[code]
	return d, ok
}

// IsDepartmentCode reports whether code is a known department code.
func IsDepartmentCode(code string) bool {
	_, ok := LookupDepartment(code)
	return ok
}
