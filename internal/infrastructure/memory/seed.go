package memory

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-inventario/internal/domain/entity"
	"github.com/jhoicas/catalogo-inventario/internal/domain/repository"
)

// expiración relativa a la fecha de carga
type expiry int

const (
	noExpiry expiry = iota
	expiresIn3Months
	expiresIn5Days
	expiresIn12Days
)

func (e expiry) date(today time.Time) *time.Time {
	var d time.Time
	switch e {
	case expiresIn3Months:
		d = today.AddDate(0, 3, 0)
	case expiresIn5Days:
		d = today.AddDate(0, 0, 5)
	case expiresIn12Days:
		d = today.AddDate(0, 0, 12)
	default:
		return nil
	}
	return &d
}

var demoCategories = []string{
	"Certificación Agile/IT",
	"Certificación Cloud",
	"Certificación DevOps",
	"Certificación Networking",
}

var demoProducts = []struct {
	name     string
	category string
	price    string
	exp      expiry
	stock    int
}{
	{"AWS Cloud Practitioner (CLF-C02) - Exam Voucher", "Certificación Cloud", "100", noExpiry, 0},
	{"Google Cloud Associate Cloud Engineer (ACE) - Exam Voucher", "Certificación Cloud", "125", expiresIn3Months, 15},
	{"Microsoft Azure Fundamentals (AZ-900) - Exam Voucher", "Certificación Cloud", "99", expiresIn5Days, 25},
	{"AWS Solutions Architect Associate (SAA-C03) - Exam Voucher", "Certificación Cloud", "150", expiresIn12Days, 0},
	{"Google Cloud Professional Cloud Architect (PCA) - Exam Voucher", "Certificación Cloud", "200", expiresIn3Months, 10},
	{"Microsoft Azure Administrator (AZ-104) - Exam Voucher", "Certificación Cloud", "165", expiresIn5Days, 12},
	{"AWS Developer Associate (DVA-C02) - Exam Voucher", "Certificación Cloud", "140", noExpiry, 0},
	{"AWS SysOps Administrator Associate (SOA-C02) - Exam Voucher", "Certificación Cloud", "150", expiresIn12Days, 5},

	{"Kubernetes CKA (Certified Kubernetes Administrator) - Exam Voucher", "Certificación DevOps", "395", expiresIn3Months, 0},
	{"Kubernetes CKAD (Certified Kubernetes Application Developer) - Exam Voucher", "Certificación DevOps", "395", expiresIn5Days, 8},
	{"Kubernetes CKS (Certified Kubernetes Security Specialist) - Exam Voucher", "Certificación DevOps", "395", expiresIn12Days, 5},
	{"HashiCorp Terraform Associate - Exam Voucher", "Certificación DevOps", "150", noExpiry, 0},
	{"HashiCorp Vault Associate - Exam Voucher", "Certificación DevOps", "150", expiresIn5Days, 7},
	{"Google Cloud Professional DevOps Engineer - Exam Voucher", "Certificación DevOps", "200", expiresIn3Months, 4},
	{"Microsoft Azure DevOps Engineer Expert (AZ-400) - Exam Voucher", "Certificación DevOps", "195", noExpiry, 0},

	{"Cisco CCNA 200-301 - Exam Voucher", "Certificación Networking", "300", expiresIn3Months, 6},
	{"Cisco CCNP Enterprise (ENCOR 350-401) - Exam Voucher", "Certificación Networking", "400", expiresIn12Days, 0},
	{"Cisco DevNet Associate (DEVASC 200-901) - Exam Voucher", "Certificación Networking", "300", expiresIn5Days, 10},
	{"CompTIA Network+ (N10-009) - Exam Voucher", "Certificación Networking", "180", noExpiry, 0},
	{"CompTIA Security+ (SY0-701) - Exam Voucher", "Certificación Networking", "250", expiresIn3Months, 12},
	{"Juniper JNCIA-Junos (JN0-104) - Exam Voucher", "Certificación Networking", "200", expiresIn5Days, 7},
	{"Aruba Certified Switching Associate (HPE6-A72) - Exam Voucher", "Certificación Networking", "210", noExpiry, 0},

	{"Scrum.org PSM I (Professional Scrum Master I) - Exam Attempt", "Certificación Agile/IT", "150", expiresIn12Days, 0},
	{"Scrum.org PSM II (Professional Scrum Master II) - Exam Attempt", "Certificación Agile/IT", "200", expiresIn5Days, 6},
	{"Scrum.org PSPO I (Professional Scrum Product Owner I) - Exam Attempt", "Certificación Agile/IT", "150", noExpiry, 10},
	{"ITIL 4 Foundation - Exam Voucher", "Certificación Agile/IT", "200", expiresIn3Months, 0},
	{"COBIT 2019 Foundation - Exam Voucher", "Certificación Agile/IT", "220", expiresIn5Days, 5},
	{"SAFe Agilist (Leading SAFe) - Exam Voucher", "Certificación Agile/IT", "250", noExpiry, 0},
	{"PMI Agile Certified Practitioner (PMI-ACP) - Exam Voucher", "Certificación Agile/IT", "300", expiresIn3Months, 4},
}

// SeedDemo carga el catálogo de demostración (vouchers de certificación).
// Las fechas de expiración se calculan a partir de today truncado al día.
func SeedDemo(categories repository.CategoryRepository, products repository.ProductRepository, today time.Time) error {
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	for _, name := range demoCategories {
		if _, err := categories.Save(&entity.Category{Name: name}); err != nil {
			return fmt.Errorf("seed category %q: %w", name, err)
		}
	}
	for _, p := range demoProducts {
		price, err := decimal.NewFromString(p.price)
		if err != nil {
			return fmt.Errorf("seed product %q: %w", p.name, err)
		}
		_, err = products.Save(&entity.Product{
			Name:           p.name,
			Category:       p.category,
			UnitPrice:      price,
			ExpirationDate: p.exp.date(today),
			Stock:          p.stock,
		})
		if err != nil {
			return fmt.Errorf("seed product %q: %w", p.name, err)
		}
	}
	return nil
}
