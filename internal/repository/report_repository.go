package repository

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"flyerhub/internal/model"
)

// ReportRepository writes surfaced deals to the shared price_reports table.
type ReportRepository struct {
	DB *sql.DB
}

func (r *ReportRepository) Save(p model.PricePoint) error {
	var exists bool
	err := r.DB.QueryRow(`
		SELECT EXISTS(
			SELECT 1 FROM price_reports
			WHERE product_name = $1 AND store_name = $2 AND price = $3
		)`, p.Item, p.Store, p.PriceValue).Scan(&exists)
	if err != nil {
		return err
	}

	if exists {
		_, err = r.DB.Exec(`
			UPDATE price_reports
			SET reported_at = $1
			WHERE product_name = $2 AND store_name = $3 AND price = $4
		`, time.Now(), p.Item, p.Store, p.PriceValue)
	} else {
		_, err = r.DB.Exec(`
			INSERT INTO price_reports
			(id, product_name, price, store_name, reported_at)
			VALUES ($1, $2, $3, $4, $5)
		`, uuid.New().String(), p.Item, p.PriceValue, p.Store, time.Now())
	}

	return err
}

func (r *ReportRepository) List(limit int) ([]model.PricePoint, error) {
	rows, err := r.DB.Query(`
		SELECT product_name, price, store_name
		FROM price_reports
		ORDER BY reported_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.PricePoint
	for rows.Next() {
		var p model.PricePoint
		rows.Scan(&p.Item, &p.PriceValue, &p.Store)
		list = append(list, p)
	}

	return list, nil
}

// Diagnose round-trips a dummy row to confirm table name, write and read
// permissions, then removes it.
func (r *ReportRepository) Diagnose() error {
	dummy := model.PricePoint{Item: "TEST_CONNECTION_ITEM", PriceValue: 0.99, Store: "DEBUG_STORE"}
	if err := r.Save(dummy); err != nil {
		return err
	}

	var name string
	if err := r.DB.QueryRow(`
		SELECT product_name FROM price_reports WHERE product_name = $1
	`, dummy.Item).Scan(&name); err != nil {
		return err
	}

	_, err := r.DB.Exec(`DELETE FROM price_reports WHERE product_name = $1`, dummy.Item)
	return err
}
