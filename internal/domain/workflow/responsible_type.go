// Package workflow tipos del motor de workflow referenciados por otros módulos.
package workflow

import "github.com/jhoicas/Inventario-hu/pkg/refenum"

// ResponsibleType tipo de responsable de un nodo de workflow.
type ResponsibleType string

const (
	ResponsibleOrganization ResponsibleType = "O"
	ResponsibleHuman        ResponsibleType = "H"
	ResponsibleRole         ResponsibleType = "R"
)

var responsibleTypeIndex = refenum.NewIndex("WFResponsibleType",
	ResponsibleOrganization, ResponsibleHuman, ResponsibleRole,
)

func (t ResponsibleType) Code() string { return string(t) }

func (t ResponsibleType) String() string {
	switch t {
	case ResponsibleOrganization:
		return "Organization"
	case ResponsibleHuman:
		return "Human"
	case ResponsibleRole:
		return "Role"
	}
	return "ResponsibleType(" + string(t) + ")"
}

// ResponsibleTypeOfCode resuelve el código; un código desconocido es error.
func ResponsibleTypeOfCode(code string) (ResponsibleType, error) {
	return responsibleTypeIndex.OfCode(code)
}
