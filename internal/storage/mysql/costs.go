package mysql

import (
	"context"
	"fmt"

	"pool-quote/internal/storage"
)

func (s *Storage) ListFixedCosts(ctx context.Context) ([]storage.FixedCost, error) {
	const op = "storage.mysql.ListFixedCosts"

	rows, err := s.db.QueryContext(ctx, `SELECT id, name, price, display_order FROM fixed_costs ORDER BY display_order, id`)
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка получения фиксированных затрат: %w", op, err)
	}
	defer rows.Close()

	costs := []storage.FixedCost{}
	for rows.Next() {
		var c storage.FixedCost
		if err := rows.Scan(&c.ID, &c.Name, &c.Price, &c.DisplayOrder); err != nil {
			return nil, fmt.Errorf("%s: ошибка сканирования строки: %w", op, err)
		}
		costs = append(costs, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: ошибка при итерации по строкам: %w", op, err)
	}

	return costs, nil
}

func (s *Storage) GetFixedCost(ctx context.Context, id int64) (*storage.FixedCost, error) {
	const op = "storage.mysql.GetFixedCost"

	c := storage.FixedCost{}
	err := s.db.QueryRowContext(ctx, `SELECT id, name, price, display_order FROM fixed_costs WHERE id = ?`, id).
		Scan(&c.ID, &c.Name, &c.Price, &c.DisplayOrder)
	if err != nil {
		return nil, mapError(op, err)
	}

	return &c, nil
}

func (s *Storage) CreateFixedCost(ctx context.Context, c storage.FixedCost) (int64, error) {
	const op = "storage.mysql.CreateFixedCost"

	res, err := s.db.ExecContext(ctx, `INSERT INTO fixed_costs (name, price, display_order) VALUES (?, ?, ?)`,
		c.Name, c.Price, c.DisplayOrder)
	if err != nil {
		return 0, mapError(op, err)
	}

	return res.LastInsertId()
}

func (s *Storage) UpdateFixedCost(ctx context.Context, id int64, c storage.FixedCost) error {
	const op = "storage.mysql.UpdateFixedCost"

	return s.execAffected(ctx, op, `UPDATE fixed_costs SET name = ?, price = ?, display_order = ? WHERE id = ?`,
		c.Name, c.Price, c.DisplayOrder, id)
}

func (s *Storage) DeleteFixedCost(ctx context.Context, id int64) error {
	const op = "storage.mysql.DeleteFixedCost"

	return s.execAffected(ctx, op, `DELETE FROM fixed_costs WHERE id = ?`, id)
}

func (s *Storage) ListCraneCosts(ctx context.Context) ([]storage.CraneCost, error) {
	const op = "storage.mysql.ListCraneCosts"

	rows, err := s.db.QueryContext(ctx, `SELECT id, name, price, display_order FROM crane_costs ORDER BY display_order, id`)
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка получения стоимости кранов: %w", op, err)
	}
	defer rows.Close()

	costs := []storage.CraneCost{}
	for rows.Next() {
		var c storage.CraneCost
		if err := rows.Scan(&c.ID, &c.Name, &c.Price, &c.DisplayOrder); err != nil {
			return nil, fmt.Errorf("%s: ошибка сканирования строки: %w", op, err)
		}
		costs = append(costs, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: ошибка при итерации по строкам: %w", op, err)
	}

	return costs, nil
}

func (s *Storage) GetCraneCost(ctx context.Context, id int64) (*storage.CraneCost, error) {
	const op = "storage.mysql.GetCraneCost"

	c := storage.CraneCost{}
	err := s.db.QueryRowContext(ctx, `SELECT id, name, price, display_order FROM crane_costs WHERE id = ?`, id).
		Scan(&c.ID, &c.Name, &c.Price, &c.DisplayOrder)
	if err != nil {
		return nil, mapError(op, err)
	}

	return &c, nil
}

func (s *Storage) CreateCraneCost(ctx context.Context, c storage.CraneCost) (int64, error) {
	const op = "storage.mysql.CreateCraneCost"

	res, err := s.db.ExecContext(ctx, `INSERT INTO crane_costs (name, price, display_order) VALUES (?, ?, ?)`,
		c.Name, c.Price, c.DisplayOrder)
	if err != nil {
		return 0, mapError(op, err)
	}

	return res.LastInsertId()
}

func (s *Storage) UpdateCraneCost(ctx context.Context, id int64, c storage.CraneCost) error {
	const op = "storage.mysql.UpdateCraneCost"

	return s.execAffected(ctx, op, `UPDATE crane_costs SET name = ?, price = ?, display_order = ? WHERE id = ?`,
		c.Name, c.Price, c.DisplayOrder, id)
}

func (s *Storage) DeleteCraneCost(ctx context.Context, id int64) error {
	const op = "storage.mysql.DeleteCraneCost"

	return s.execAffected(ctx, op, `DELETE FROM crane_costs WHERE id = ?`, id)
}

const digTypeColumns = `id, name, truck_quantity, truck_hourly_rate, truck_hours, excavation_hourly_rate, excavation_hours`

func scanDigType(row interface{ Scan(...any) error }, d *storage.DigType) error {
	return row.Scan(&d.ID, &d.Name, &d.TruckQuantity, &d.TruckHourlyRate, &d.TruckHours,
		&d.ExcavationHourlyRate, &d.ExcavationHours)
}

func (s *Storage) ListDigTypes(ctx context.Context) ([]storage.DigType, error) {
	const op = "storage.mysql.ListDigTypes"

	rows, err := s.db.QueryContext(ctx, `SELECT `+digTypeColumns+` FROM dig_types ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка получения типов выемки: %w", op, err)
	}
	defer rows.Close()

	digTypes := []storage.DigType{}
	for rows.Next() {
		var d storage.DigType
		if err := scanDigType(rows, &d); err != nil {
			return nil, fmt.Errorf("%s: ошибка сканирования строки: %w", op, err)
		}
		digTypes = append(digTypes, d)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: ошибка при итерации по строкам: %w", op, err)
	}

	return digTypes, nil
}

func (s *Storage) GetDigType(ctx context.Context, id int64) (*storage.DigType, error) {
	const op = "storage.mysql.GetDigType"

	var d storage.DigType
	if err := scanDigType(s.db.QueryRowContext(ctx, `SELECT `+digTypeColumns+` FROM dig_types WHERE id = ?`, id), &d); err != nil {
		return nil, mapError(op, err)
	}

	return &d, nil
}

func (s *Storage) CreateDigType(ctx context.Context, d storage.DigType) (int64, error) {
	const op = "storage.mysql.CreateDigType"

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO dig_types (name, truck_quantity, truck_hourly_rate, truck_hours, excavation_hourly_rate, excavation_hours)
		VALUES (?, ?, ?, ?, ?, ?)`,
		d.Name, d.TruckQuantity, d.TruckHourlyRate, d.TruckHours, d.ExcavationHourlyRate, d.ExcavationHours)
	if err != nil {
		return 0, mapError(op, err)
	}

	return res.LastInsertId()
}

func (s *Storage) UpdateDigType(ctx context.Context, id int64, d storage.DigType) error {
	const op = "storage.mysql.UpdateDigType"

	return s.execAffected(ctx, op, `
		UPDATE dig_types
		SET name = ?, truck_quantity = ?, truck_hourly_rate = ?, truck_hours = ?, excavation_hourly_rate = ?, excavation_hours = ?
		WHERE id = ?`,
		d.Name, d.TruckQuantity, d.TruckHourlyRate, d.TruckHours, d.ExcavationHourlyRate, d.ExcavationHours, id)
}

func (s *Storage) DeleteDigType(ctx context.Context, id int64) error {
	const op = "storage.mysql.DeleteDigType"

	return s.execAffected(ctx, op, `DELETE FROM dig_types WHERE id = ?`, id)
}
