package mysql

import (
	"context"
	"fmt"

	"pool-quote/internal/storage"
)

func (s *Storage) ListGeneralExtras(ctx context.Context) ([]storage.GeneralExtra, error) {
	const op = "storage.mysql.ListGeneralExtras"

	rows, err := s.db.QueryContext(ctx, `SELECT id, name, type, description, cost, margin, rrp FROM general_extras ORDER BY type, name`)
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка получения доп. опций: %w", op, err)
	}
	defer rows.Close()

	extras := []storage.GeneralExtra{}
	for rows.Next() {
		var e storage.GeneralExtra
		if err := rows.Scan(&e.ID, &e.Name, &e.Type, &e.Description, &e.Cost, &e.Margin, &e.RRP); err != nil {
			return nil, fmt.Errorf("%s: ошибка сканирования строки: %w", op, err)
		}
		extras = append(extras, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: ошибка при итерации по строкам: %w", op, err)
	}

	return extras, nil
}

func (s *Storage) GetGeneralExtra(ctx context.Context, id int64) (*storage.GeneralExtra, error) {
	const op = "storage.mysql.GetGeneralExtra"

	e := storage.GeneralExtra{}
	err := s.db.QueryRowContext(ctx, `SELECT id, name, type, description, cost, margin, rrp FROM general_extras WHERE id = ?`, id).
		Scan(&e.ID, &e.Name, &e.Type, &e.Description, &e.Cost, &e.Margin, &e.RRP)
	if err != nil {
		return nil, mapError(op, err)
	}

	return &e, nil
}

func (s *Storage) CreateGeneralExtra(ctx context.Context, e storage.GeneralExtra) (int64, error) {
	const op = "storage.mysql.CreateGeneralExtra"

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO general_extras (name, type, description, cost, margin, rrp) VALUES (?, ?, ?, ?, ?, ?)`,
		e.Name, e.Type, e.Description, e.Cost, e.Margin, e.RRP)
	if err != nil {
		return 0, mapError(op, err)
	}

	return res.LastInsertId()
}

func (s *Storage) UpdateGeneralExtra(ctx context.Context, id int64, e storage.GeneralExtra) error {
	const op = "storage.mysql.UpdateGeneralExtra"

	return s.execAffected(ctx, op,
		`UPDATE general_extras SET name = ?, type = ?, description = ?, cost = ?, margin = ?, rrp = ? WHERE id = ?`,
		e.Name, e.Type, e.Description, e.Cost, e.Margin, e.RRP, id)
}

func (s *Storage) DeleteGeneralExtra(ctx context.Context, id int64) error {
	const op = "storage.mysql.DeleteGeneralExtra"

	return s.execAffected(ctx, op, `DELETE FROM general_extras WHERE id = ?`, id)
}

func (s *Storage) ListPoolGeneralExtras(ctx context.Context, poolID int64) ([]storage.PoolGeneralExtra, error) {
	const op = "storage.mysql.ListPoolGeneralExtras"

	rows, err := s.db.QueryContext(ctx, `
		SELECT pe.id, pe.pool_id, pe.general_extra_id, pe.quantity, g.name, g.rrp
		FROM pool_general_extras pe
		JOIN general_extras g ON g.id = pe.general_extra_id
		WHERE pe.pool_id = ?
		ORDER BY pe.id`, poolID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	extras := []storage.PoolGeneralExtra{}
	for rows.Next() {
		var e storage.PoolGeneralExtra
		if err := rows.Scan(&e.ID, &e.PoolSpecificationID, &e.GeneralExtraID, &e.Quantity, &e.Name, &e.RRP); err != nil {
			return nil, fmt.Errorf("%s: ошибка сканирования строки: %w", op, err)
		}
		extras = append(extras, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: ошибка при итерации по строкам: %w", op, err)
	}

	return extras, nil
}

func (s *Storage) CreatePoolGeneralExtra(ctx context.Context, e storage.PoolGeneralExtra) (int64, error) {
	const op = "storage.mysql.CreatePoolGeneralExtra"

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO pool_general_extras (pool_id, general_extra_id, quantity) VALUES (?, ?, ?)`,
		e.PoolSpecificationID, e.GeneralExtraID, e.Quantity)
	if err != nil {
		return 0, mapError(op, err)
	}

	return res.LastInsertId()
}

func (s *Storage) DeletePoolGeneralExtra(ctx context.Context, id int64) error {
	const op = "storage.mysql.DeletePoolGeneralExtra"

	return s.execAffected(ctx, op, `DELETE FROM pool_general_extras WHERE id = ?`, id)
}

func (s *Storage) ListHeatPumps(ctx context.Context) ([]storage.HeatPump, error) {
	const op = "storage.mysql.ListHeatPumps"

	rows, err := s.db.QueryContext(ctx, `SELECT id, hp_sku, hp_name, cost, margin, rrp FROM heat_pump_products ORDER BY hp_name`)
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка получения тепловых насосов: %w", op, err)
	}
	defer rows.Close()

	pumps := []storage.HeatPump{}
	for rows.Next() {
		var h storage.HeatPump
		if err := rows.Scan(&h.ID, &h.ProductCode, &h.Name, &h.Cost, &h.Margin, &h.RRP); err != nil {
			return nil, fmt.Errorf("%s: ошибка сканирования строки: %w", op, err)
		}
		pumps = append(pumps, h)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: ошибка при итерации по строкам: %w", op, err)
	}

	return pumps, nil
}

func (s *Storage) GetHeatPump(ctx context.Context, id int64) (*storage.HeatPump, error) {
	const op = "storage.mysql.GetHeatPump"

	h := storage.HeatPump{}
	err := s.db.QueryRowContext(ctx, `SELECT id, hp_sku, hp_name, cost, margin, rrp FROM heat_pump_products WHERE id = ?`, id).
		Scan(&h.ID, &h.ProductCode, &h.Name, &h.Cost, &h.Margin, &h.RRP)
	if err != nil {
		return nil, mapError(op, err)
	}

	return &h, nil
}

func (s *Storage) CreateHeatPump(ctx context.Context, h storage.HeatPump) (int64, error) {
	const op = "storage.mysql.CreateHeatPump"

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO heat_pump_products (hp_sku, hp_name, cost, margin, rrp) VALUES (?, ?, ?, ?, ?)`,
		h.ProductCode, h.Name, h.Cost, h.Margin, h.RRP)
	if err != nil {
		return 0, mapError(op, err)
	}

	return res.LastInsertId()
}

func (s *Storage) UpdateHeatPump(ctx context.Context, id int64, h storage.HeatPump) error {
	const op = "storage.mysql.UpdateHeatPump"

	return s.execAffected(ctx, op,
		`UPDATE heat_pump_products SET hp_sku = ?, hp_name = ?, cost = ?, margin = ?, rrp = ? WHERE id = ?`,
		h.ProductCode, h.Name, h.Cost, h.Margin, h.RRP, id)
}

func (s *Storage) DeleteHeatPump(ctx context.Context, id int64) error {
	const op = "storage.mysql.DeleteHeatPump"

	return s.execAffected(ctx, op, `DELETE FROM heat_pump_products WHERE id = ?`, id)
}

func (s *Storage) ListHeatPumpCompatibility(ctx context.Context) ([]storage.HeatPumpCompatibility, error) {
	const op = "storage.mysql.ListHeatPumpCompatibility"

	rows, err := s.db.QueryContext(ctx, `
		SELECT c.id, c.pool_id, c.heat_pump_id, p.name, h.hp_name
		FROM heat_pump_compatibility c
		JOIN pool_specifications p ON p.id = c.pool_id
		JOIN heat_pump_products h ON h.id = c.heat_pump_id
		ORDER BY p.name, h.hp_name`)
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка получения матрицы тепловых насосов: %w", op, err)
	}
	defer rows.Close()

	matrix := []storage.HeatPumpCompatibility{}
	for rows.Next() {
		var c storage.HeatPumpCompatibility
		if err := rows.Scan(&c.ID, &c.PoolSpecificationID, &c.HeatPumpID, &c.PoolName, &c.HeatPumpName); err != nil {
			return nil, fmt.Errorf("%s: ошибка сканирования строки: %w", op, err)
		}
		matrix = append(matrix, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: ошибка при итерации по строкам: %w", op, err)
	}

	return matrix, nil
}

// HeatPumpCompatible проверяет, есть ли пара бассейн/насос в матрице совместимости.
func (s *Storage) HeatPumpCompatible(ctx context.Context, poolID, heatPumpID int64) (bool, error) {
	const op = "storage.mysql.HeatPumpCompatible"

	var ok bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM heat_pump_compatibility WHERE pool_id = ? AND heat_pump_id = ?)`,
		poolID, heatPumpID).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return ok, nil
}

func (s *Storage) CreateHeatPumpCompatibility(ctx context.Context, c storage.HeatPumpCompatibility) (int64, error) {
	const op = "storage.mysql.CreateHeatPumpCompatibility"

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO heat_pump_compatibility (pool_id, heat_pump_id) VALUES (?, ?)`,
		c.PoolSpecificationID, c.HeatPumpID)
	if err != nil {
		return 0, mapError(op, err)
	}

	return res.LastInsertId()
}

func (s *Storage) DeleteHeatPumpCompatibility(ctx context.Context, id int64) error {
	const op = "storage.mysql.DeleteHeatPumpCompatibility"

	return s.execAffected(ctx, op, `DELETE FROM heat_pump_compatibility WHERE id = ?`, id)
}
