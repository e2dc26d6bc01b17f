package parcel

import (
	"errors"
	"strings"

	"profast/internal/pkg/errs"
)

// Party is the sender or the receiver of a parcel. ServiceCenter is the district of
// the warehouse that handles the party's side of the delivery.
type Party struct {
	Name          string
	Contact       string
	Region        string
	ServiceCenter string
	Address       string
}

// Validate checks that every field needed to hand over the parcel is present.
func (p Party) Validate(role string) error {
	return errors.Join(
		required(role+"_name", p.Name),
		required(role+"_contact", p.Contact),
		required(role+"_region", p.Region),
		required(role+"_service_center", p.ServiceCenter),
		required(role+"_address", p.Address),
	)
}

func required(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
