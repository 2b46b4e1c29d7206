package mysql

import (
	"context"
	"fmt"

	"pool-quote/internal/storage"
)

const poolColumns = `id, name, pool_range, length, width, depth_shallow, depth_deep, volume_liters,
	buy_price_inc_gst, buy_price_ex_gst, dig_type_id, default_filtration_package_id`

func scanPool(row interface{ Scan(...any) error }, p *storage.PoolSpecification) error {
	return row.Scan(&p.ID, &p.Name, &p.Range, &p.LengthM, &p.WidthM, &p.DepthShallowM, &p.DepthDeepM,
		&p.VolumeLitres, &p.BuyPriceIncGST, &p.BuyPriceExGST, &p.DigTypeID, &p.FiltrationPackageID)
}

func (s *Storage) ListPoolSpecifications(ctx context.Context) ([]storage.PoolSpecification, error) {
	const op = "storage.mysql.ListPoolSpecifications"

	rows, err := s.db.QueryContext(ctx, `SELECT `+poolColumns+` FROM pool_specifications ORDER BY pool_range, name`)
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка получения бассейнов: %w", op, err)
	}
	defer rows.Close()

	pools := []storage.PoolSpecification{}
	for rows.Next() {
		var p storage.PoolSpecification
		if err := scanPool(rows, &p); err != nil {
			return nil, fmt.Errorf("%s: ошибка сканирования строки: %w", op, err)
		}
		pools = append(pools, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: ошибка при итерации по строкам: %w", op, err)
	}

	return pools, nil
}

func (s *Storage) GetPoolSpecification(ctx context.Context, id int64) (*storage.PoolSpecification, error) {
	const op = "storage.mysql.GetPoolSpecification"

	var p storage.PoolSpecification
	err := scanPool(s.db.QueryRowContext(ctx, `SELECT `+poolColumns+` FROM pool_specifications WHERE id = ?`, id), &p)
	if err != nil {
		return nil, mapError(op, err)
	}

	return &p, nil
}

func (s *Storage) CreatePoolSpecification(ctx context.Context, p storage.PoolSpecification) (int64, error) {
	const op = "storage.mysql.CreatePoolSpecification"

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO pool_specifications (name, pool_range, length, width, depth_shallow, depth_deep, volume_liters,
			buy_price_inc_gst, buy_price_ex_gst, dig_type_id, default_filtration_package_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Name, p.Range, p.LengthM, p.WidthM, p.DepthShallowM, p.DepthDeepM, p.VolumeLitres,
		p.BuyPriceIncGST, p.BuyPriceExGST, p.DigTypeID, p.FiltrationPackageID)
	if err != nil {
		return 0, mapError(op, err)
	}

	return res.LastInsertId()
}

func (s *Storage) UpdatePoolSpecification(ctx context.Context, id int64, p storage.PoolSpecification) error {
	const op = "storage.mysql.UpdatePoolSpecification"

	return s.execAffected(ctx, op, `
		UPDATE pool_specifications
		SET name = ?, pool_range = ?, length = ?, width = ?, depth_shallow = ?, depth_deep = ?, volume_liters = ?,
			buy_price_inc_gst = ?, buy_price_ex_gst = ?, dig_type_id = ?, default_filtration_package_id = ?
		WHERE id = ?`,
		p.Name, p.Range, p.LengthM, p.WidthM, p.DepthShallowM, p.DepthDeepM, p.VolumeLitres,
		p.BuyPriceIncGST, p.BuyPriceExGST, p.DigTypeID, p.FiltrationPackageID, id)
}

func (s *Storage) DeletePoolSpecification(ctx context.Context, id int64) error {
	const op = "storage.mysql.DeletePoolSpecification"

	return s.execAffected(ctx, op, `DELETE FROM pool_specifications WHERE id = ?`, id)
}

func (s *Storage) ListPoolCosts(ctx context.Context, poolID int64) ([]storage.PoolCost, error) {
	const op = "storage.mysql.ListPoolCosts"

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, pool_id, name, amount FROM pool_costs WHERE pool_id = ? ORDER BY id`, poolID)
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка получения затрат бассейна: %w", op, err)
	}
	defer rows.Close()

	costs := []storage.PoolCost{}
	for rows.Next() {
		var c storage.PoolCost
		if err := rows.Scan(&c.ID, &c.PoolSpecificationID, &c.Name, &c.Amount); err != nil {
			return nil, fmt.Errorf("%s: ошибка сканирования строки: %w", op, err)
		}
		costs = append(costs, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: ошибка при итерации по строкам: %w", op, err)
	}

	return costs, nil
}

// ListAllPoolCosts: все затраты сразу, сгруппированные по бассейну.
func (s *Storage) ListAllPoolCosts(ctx context.Context) (map[int64][]storage.PoolCost, error) {
	const op = "storage.mysql.ListAllPoolCosts"

	rows, err := s.db.QueryContext(ctx, `SELECT id, pool_id, name, amount FROM pool_costs ORDER BY pool_id, id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	costs := make(map[int64][]storage.PoolCost)
	for rows.Next() {
		var c storage.PoolCost
		if err := rows.Scan(&c.ID, &c.PoolSpecificationID, &c.Name, &c.Amount); err != nil {
			return nil, fmt.Errorf("%s: ошибка сканирования строки: %w", op, err)
		}
		costs[c.PoolSpecificationID] = append(costs[c.PoolSpecificationID], c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: ошибка при итерации по строкам: %w", op, err)
	}

	return costs, nil
}

func (s *Storage) CreatePoolCost(ctx context.Context, c storage.PoolCost) (int64, error) {
	const op = "storage.mysql.CreatePoolCost"

	res, err := s.db.ExecContext(ctx, `INSERT INTO pool_costs (pool_id, name, amount) VALUES (?, ?, ?)`,
		c.PoolSpecificationID, c.Name, c.Amount)
	if err != nil {
		return 0, mapError(op, err)
	}

	return res.LastInsertId()
}

func (s *Storage) UpdatePoolCost(ctx context.Context, id int64, c storage.PoolCost) error {
	const op = "storage.mysql.UpdatePoolCost"

	return s.execAffected(ctx, op, `UPDATE pool_costs SET pool_id = ?, name = ?, amount = ? WHERE id = ?`,
		c.PoolSpecificationID, c.Name, c.Amount, id)
}

func (s *Storage) DeletePoolCost(ctx context.Context, id int64) error {
	const op = "storage.mysql.DeletePoolCost"

	return s.execAffected(ctx, op, `DELETE FROM pool_costs WHERE id = ?`, id)
}

func (s *Storage) ListPoolMargins(ctx context.Context) ([]storage.PoolMargin, error) {
	const op = "storage.mysql.ListPoolMargins"

	rows, err := s.db.QueryContext(ctx, `SELECT pool_id, margin_percentage FROM pool_margins ORDER BY pool_id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	margins := []storage.PoolMargin{}
	for rows.Next() {
		var m storage.PoolMargin
		if err := rows.Scan(&m.PoolSpecificationID, &m.MarginPercentage); err != nil {
			return nil, fmt.Errorf("%s: ошибка сканирования строки: %w", op, err)
		}
		margins = append(margins, m)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: ошибка при итерации по строкам: %w", op, err)
	}

	return margins, nil
}

func (s *Storage) GetPoolMargin(ctx context.Context, poolID int64) (*storage.PoolMargin, error) {
	const op = "storage.mysql.GetPoolMargin"

	m := storage.PoolMargin{}
	err := s.db.QueryRowContext(ctx, `SELECT pool_id, margin_percentage FROM pool_margins WHERE pool_id = ?`, poolID).
		Scan(&m.PoolSpecificationID, &m.MarginPercentage)
	if err != nil {
		return nil, mapError(op, err)
	}

	return &m, nil
}

func (s *Storage) UpsertPoolMargin(ctx context.Context, m storage.PoolMargin) error {
	const op = "storage.mysql.UpsertPoolMargin"

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO pool_margins (pool_id, margin_percentage) VALUES (?, ?)
		ON DUPLICATE KEY UPDATE margin_percentage = VALUES(margin_percentage)`,
		m.PoolSpecificationID, m.MarginPercentage)
	if err != nil {
		return mapError(op, err)
	}

	return nil
}
