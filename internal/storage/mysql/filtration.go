package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"pool-quote/internal/storage"
)

func (s *Storage) ListFiltrationComponents(ctx context.Context, typeID string) ([]storage.FiltrationComponent, error) {
	const op = "storage.mysql.ListFiltrationComponents"

	query := `SELECT id, name, model_number, type_id, price FROM filtration_components`
	var args []any
	if typeID != "" {
		query += ` WHERE type_id = ?`
		args = append(args, typeID)
	}
	query += ` ORDER BY type_id, name`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка получения компонентов фильтрации: %w", op, err)
	}
	defer rows.Close()

	components := []storage.FiltrationComponent{}
	for rows.Next() {
		var c storage.FiltrationComponent
		if err := rows.Scan(&c.ID, &c.Name, &c.ModelNumber, &c.TypeID, &c.Price); err != nil {
			return nil, fmt.Errorf("%s: ошибка сканирования строки: %w", op, err)
		}
		components = append(components, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: ошибка при итерации по строкам: %w", op, err)
	}

	return components, nil
}

func (s *Storage) GetFiltrationComponent(ctx context.Context, id int64) (*storage.FiltrationComponent, error) {
	const op = "storage.mysql.GetFiltrationComponent"

	c := storage.FiltrationComponent{}
	err := s.db.QueryRowContext(ctx, `SELECT id, name, model_number, type_id, price FROM filtration_components WHERE id = ?`, id).
		Scan(&c.ID, &c.Name, &c.ModelNumber, &c.TypeID, &c.Price)
	if err != nil {
		return nil, mapError(op, err)
	}

	return &c, nil
}

func (s *Storage) CreateFiltrationComponent(ctx context.Context, c storage.FiltrationComponent) (int64, error) {
	const op = "storage.mysql.CreateFiltrationComponent"

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO filtration_components (name, model_number, type_id, price) VALUES (?, ?, ?, ?)`,
		c.Name, c.ModelNumber, c.TypeID, c.Price)
	if err != nil {
		return 0, mapError(op, err)
	}

	return res.LastInsertId()
}

func (s *Storage) UpdateFiltrationComponent(ctx context.Context, id int64, c storage.FiltrationComponent) error {
	const op = "storage.mysql.UpdateFiltrationComponent"

	return s.execAffected(ctx, op,
		`UPDATE filtration_components SET name = ?, model_number = ?, type_id = ?, price = ? WHERE id = ?`,
		c.Name, c.ModelNumber, c.TypeID, c.Price, id)
}

func (s *Storage) DeleteFiltrationComponent(ctx context.Context, id int64) error {
	const op = "storage.mysql.DeleteFiltrationComponent"

	return s.execAffected(ctx, op, `DELETE FROM filtration_components WHERE id = ?`, id)
}

const filtrationPackageColumns = `id, name, display_order, pump_id, filter_id, sanitiser_id, light_id, handover_kit_id`

func scanFiltrationPackage(row interface{ Scan(...any) error }, p *storage.FiltrationPackage) error {
	return row.Scan(&p.ID, &p.Name, &p.DisplayOrder, &p.PumpID, &p.FilterID, &p.SanitiserID, &p.LightID, &p.HandoverKitID)
}

func (s *Storage) ListFiltrationPackages(ctx context.Context) ([]storage.FiltrationPackage, error) {
	const op = "storage.mysql.ListFiltrationPackages"

	rows, err := s.db.QueryContext(ctx, `SELECT `+filtrationPackageColumns+` FROM filtration_packages ORDER BY display_order, id`)
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка получения пакетов фильтрации: %w", op, err)
	}
	defer rows.Close()

	packages := []storage.FiltrationPackage{}
	for rows.Next() {
		var p storage.FiltrationPackage
		if err := scanFiltrationPackage(rows, &p); err != nil {
			return nil, fmt.Errorf("%s: ошибка сканирования строки: %w", op, err)
		}
		packages = append(packages, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: ошибка при итерации по строкам: %w", op, err)
	}

	return packages, nil
}

func (s *Storage) GetFiltrationPackage(ctx context.Context, id int64) (*storage.FiltrationPackage, error) {
	const op = "storage.mysql.GetFiltrationPackage"

	var p storage.FiltrationPackage
	row := s.db.QueryRowContext(ctx, `SELECT `+filtrationPackageColumns+` FROM filtration_packages WHERE id = ?`, id)
	if err := scanFiltrationPackage(row, &p); err != nil {
		return nil, mapError(op, err)
	}

	return &p, nil
}

// GetFiltrationPackageDetails подтягивает к пакету компоненты и комплект передачи.
func (s *Storage) GetFiltrationPackageDetails(ctx context.Context, id int64) (*storage.FiltrationPackageDetails, error) {
	const op = "storage.mysql.GetFiltrationPackageDetails"

	pkg, err := s.GetFiltrationPackage(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	details := &storage.FiltrationPackageDetails{FiltrationPackage: *pkg}

	slots := []struct {
		id  *int64
		dst **storage.FiltrationComponent
	}{
		{pkg.PumpID, &details.Pump},
		{pkg.FilterID, &details.Filter},
		{pkg.SanitiserID, &details.Sanitiser},
		{pkg.LightID, &details.Light},
	}

	for _, slot := range slots {
		if slot.id == nil {
			continue
		}
		c, err := s.GetFiltrationComponent(ctx, *slot.id)
		if err != nil {
			return nil, fmt.Errorf("%s: компонент id=%d: %w", op, *slot.id, err)
		}
		*slot.dst = c
	}

	if pkg.HandoverKitID != nil {
		kit, err := s.GetHandoverKitPackage(ctx, *pkg.HandoverKitID)
		if err != nil {
			return nil, fmt.Errorf("%s: комплект передачи id=%d: %w", op, *pkg.HandoverKitID, err)
		}
		details.HandoverKit = kit
	}

	return details, nil
}

func (s *Storage) CreateFiltrationPackage(ctx context.Context, p storage.FiltrationPackage) (int64, error) {
	const op = "storage.mysql.CreateFiltrationPackage"

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO filtration_packages (name, display_order, pump_id, filter_id, sanitiser_id, light_id, handover_kit_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.Name, p.DisplayOrder, p.PumpID, p.FilterID, p.SanitiserID, p.LightID, p.HandoverKitID)
	if err != nil {
		return 0, mapError(op, err)
	}

	return res.LastInsertId()
}

func (s *Storage) UpdateFiltrationPackage(ctx context.Context, id int64, p storage.FiltrationPackage) error {
	const op = "storage.mysql.UpdateFiltrationPackage"

	return s.execAffected(ctx, op, `
		UPDATE filtration_packages
		SET name = ?, display_order = ?, pump_id = ?, filter_id = ?, sanitiser_id = ?, light_id = ?, handover_kit_id = ?
		WHERE id = ?`,
		p.Name, p.DisplayOrder, p.PumpID, p.FilterID, p.SanitiserID, p.LightID, p.HandoverKitID, id)
}

func (s *Storage) DeleteFiltrationPackage(ctx context.Context, id int64) error {
	const op = "storage.mysql.DeleteFiltrationPackage"

	return s.execAffected(ctx, op, `DELETE FROM filtration_packages WHERE id = ?`, id)
}

func (s *Storage) ListHandoverKitPackages(ctx context.Context) ([]storage.HandoverKitPackage, error) {
	const op = "storage.mysql.ListHandoverKitPackages"

	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM handover_kit_packages ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка получения комплектов передачи: %w", op, err)
	}
	defer rows.Close()

	kits := []storage.HandoverKitPackage{}
	for rows.Next() {
		var k storage.HandoverKitPackage
		if err := rows.Scan(&k.ID, &k.Name); err != nil {
			return nil, fmt.Errorf("%s: ошибка сканирования строки: %w", op, err)
		}
		kits = append(kits, k)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: ошибка при итерации по строкам: %w", op, err)
	}

	return kits, nil
}

func (s *Storage) GetHandoverKitPackage(ctx context.Context, id int64) (*storage.HandoverKitPackage, error) {
	const op = "storage.mysql.GetHandoverKitPackage"

	kit := &storage.HandoverKitPackage{}
	err := s.db.QueryRowContext(ctx, `SELECT id, name FROM handover_kit_packages WHERE id = ?`, id).Scan(&kit.ID, &kit.Name)
	if err != nil {
		return nil, mapError(op, err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT hc.id, hc.package_id, hc.component_id, hc.quantity, fc.name, fc.price
		FROM handover_kit_package_components hc
		JOIN filtration_components fc ON fc.id = hc.component_id
		WHERE hc.package_id = ?
		ORDER BY hc.id`, id)
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка получения компонентов комплекта: %w", op, err)
	}
	defer rows.Close()

	kit.Components = []storage.HandoverKitPackageComponent{}
	for rows.Next() {
		var c storage.HandoverKitPackageComponent
		if err := rows.Scan(&c.ID, &c.PackageID, &c.ComponentID, &c.Quantity, &c.ComponentName, &c.ComponentPrice); err != nil {
			return nil, fmt.Errorf("%s: ошибка сканирования строки: %w", op, err)
		}
		kit.Components = append(kit.Components, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: ошибка при итерации по строкам: %w", op, err)
	}

	return kit, nil
}

// CreateHandoverKitPackage создаёт комплект вместе с компонентами в одной транзакции.
func (s *Storage) CreateHandoverKitPackage(ctx context.Context, kit storage.HandoverKitPackage) (int64, error) {
	const op = "storage.mysql.CreateHandoverKitPackage"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: не удалось начать транзакцию: %w", op, err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `INSERT INTO handover_kit_packages (name) VALUES (?)`, kit.Name)
	if err != nil {
		return 0, mapError(op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if err := insertKitComponents(ctx, tx, id, kit.Components); err != nil {
		return 0, mapError(op, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: ошибка коммита транзакции: %w", op, err)
	}

	return id, nil
}

// UpdateHandoverKitPackage переписывает название и полностью заменяет список компонентов.
func (s *Storage) UpdateHandoverKitPackage(ctx context.Context, id int64, kit storage.HandoverKitPackage) error {
	const op = "storage.mysql.UpdateHandoverKitPackage"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: не удалось начать транзакцию: %w", op, err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `UPDATE handover_kit_packages SET name = ? WHERE id = ?`, kit.Name, id)
	if err != nil {
		return mapError(op, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM handover_kit_package_components WHERE package_id = ?`, id); err != nil {
		return fmt.Errorf("%s: ошибка удаления старых компонентов: %w", op, err)
	}

	if err := insertKitComponents(ctx, tx, id, kit.Components); err != nil {
		return mapError(op, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: ошибка коммита транзакции: %w", op, err)
	}

	return nil
}

func (s *Storage) DeleteHandoverKitPackage(ctx context.Context, id int64) error {
	const op = "storage.mysql.DeleteHandoverKitPackage"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: не удалось начать транзакцию: %w", op, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM handover_kit_package_components WHERE package_id = ?`, id); err != nil {
		return mapError(op, err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM handover_kit_packages WHERE id = ?`, id)
	if err != nil {
		return mapError(op, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: ошибка коммита транзакции: %w", op, err)
	}

	return nil
}

func insertKitComponents(ctx context.Context, tx *sql.Tx, packageID int64, components []storage.HandoverKitPackageComponent) error {
	if len(components) == 0 {
		return nil
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO handover_kit_package_components (package_id, component_id, quantity) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("не удалось подготовить запрос: %w", err)
	}
	defer stmt.Close()

	for _, c := range components {
		if _, err := stmt.ExecContext(ctx, packageID, c.ComponentID, c.Quantity); err != nil {
			return fmt.Errorf("ошибка добавления компонента id=%d: %w", c.ComponentID, err)
		}
	}

	return nil
}
