package models

import (
	"regexp"
	"strings"
)

// Vehicle maps the legacy entregador_veiculo table.
type Vehicle struct {
	ID        uint          `gorm:"column:cod_id_veiculo;primaryKey;autoIncrement"`
	CourierID uint          `gorm:"column:cod_id_entregador;not null;uniqueIndex:uq_veiculo_entregador_placa,priority:1"`
	Plate     string        `gorm:"column:dsc_placa;size:8;not null;uniqueIndex:uq_veiculo_entregador_placa,priority:2"`
	Type      VehicleType   `gorm:"column:num_tipo;not null"`
	Status    VehicleStatus `gorm:"column:num_status;not null"`
}

func (Vehicle) TableName() string {
	return "entregador_veiculo"
}

func (v Vehicle) Active() bool {
	return v.Status == VehicleStatusActive
}

var (
	mercosulPlate = regexp.MustCompile(`^[A-Z]{3}[0-9][A-Z][0-9]{2}$`)
	oldPlate      = regexp.MustCompile(`^[A-Z]{3}-[0-9]{4}$`)
)

// NormalizePlate trims and upper-cases a plate. Plates are stored in this form.
func NormalizePlate(plate string) string {
	return strings.ToUpper(strings.TrimSpace(plate))
}

// ValidPlate accepts the Mercosul (ABC1D23) and the old (ABC-1234) formats in any case.
func ValidPlate(plate string) bool {
	p := NormalizePlate(plate)
	return mercosulPlate.MatchString(p) || oldPlate.MatchString(p)
}
