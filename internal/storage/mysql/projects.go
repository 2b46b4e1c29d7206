package mysql

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"pool-quote/internal/storage"
)

const projectColumns = `id, owner1, email, phone, site_address, pool_specification_id, crane_id, dig_type_id,
	filtration_package_id, heat_pump_id, selections, created_at`

func scanProject(row interface{ Scan(...any) error }, p *storage.PoolProject) error {
	var selectionsJSON []byte
	err := row.Scan(&p.ID, &p.OwnerName, &p.Email, &p.Phone, &p.SiteAddress, &p.PoolSpecificationID,
		&p.CraneCostID, &p.DigTypeID, &p.FiltrationPackageID, &p.HeatPumpID, &selectionsJSON, &p.CreatedAt)
	if err != nil {
		return err
	}

	if len(selectionsJSON) > 0 {
		if err := json.Unmarshal(selectionsJSON, &p.Selections); err != nil {
			return fmt.Errorf("ошибка парсинга JSON выбора по проекту: %w", err)
		}
	}

	return nil
}

func (s *Storage) CreatePoolProject(ctx context.Context, p storage.PoolProject) (string, error) {
	const op = "storage.mysql.CreatePoolProject"

	selections, err := json.Marshal(p.Selections)
	if err != nil {
		return "", fmt.Errorf("%s: ошибка сериализации выбора: %w", op, err)
	}

	id := uuid.NewString()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO pool_projects (id, owner1, email, phone, site_address, pool_specification_id, crane_id, dig_type_id,
			filtration_package_id, heat_pump_id, selections, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, p.OwnerName, p.Email, p.Phone, p.SiteAddress, p.PoolSpecificationID, p.CraneCostID, p.DigTypeID,
		p.FiltrationPackageID, p.HeatPumpID, selections, time.Now().UTC())
	if err != nil {
		return "", mapError(op, err)
	}

	return id, nil
}

func (s *Storage) GetPoolProject(ctx context.Context, id string) (*storage.PoolProject, error) {
	const op = "storage.mysql.GetPoolProject"

	var p storage.PoolProject
	if err := scanProject(s.db.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM pool_projects WHERE id = ?`, id), &p); err != nil {
		return nil, mapError(op, err)
	}

	return &p, nil
}

// % и _ в поиске ищутся буквально
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (s *Storage) ListPoolProjects(ctx context.Context, search string) ([]storage.PoolProject, error) {
	const op = "storage.mysql.ListPoolProjects"

	query := `SELECT ` + projectColumns + ` FROM pool_projects`
	var args []any
	if search != "" {
		query += ` WHERE owner1 LIKE ? ESCAPE '\\' OR email LIKE ? ESCAPE '\\' OR site_address LIKE ? ESCAPE '\\'`
		like := "%" + likeEscaper.Replace(search) + "%"
		args = append(args, like, like, like)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка получения проектов: %w", op, err)
	}
	defer rows.Close()

	projects := []storage.PoolProject{}
	for rows.Next() {
		var p storage.PoolProject
		if err := scanProject(rows, &p); err != nil {
			return nil, fmt.Errorf("%s: ошибка сканирования строки: %w", op, err)
		}
		projects = append(projects, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: ошибка при итерации по строкам: %w", op, err)
	}

	return projects, nil
}

func (s *Storage) UpdatePoolProject(ctx context.Context, id string, p storage.PoolProject) error {
	const op = "storage.mysql.UpdatePoolProject"

	selections, err := json.Marshal(p.Selections)
	if err != nil {
		return fmt.Errorf("%s: ошибка сериализации выбора: %w", op, err)
	}

	return s.execAffected(ctx, op, `
		UPDATE pool_projects
		SET owner1 = ?, email = ?, phone = ?, site_address = ?, pool_specification_id = ?, crane_id = ?, dig_type_id = ?,
			filtration_package_id = ?, heat_pump_id = ?, selections = ?
		WHERE id = ?`,
		p.OwnerName, p.Email, p.Phone, p.SiteAddress, p.PoolSpecificationID, p.CraneCostID, p.DigTypeID,
		p.FiltrationPackageID, p.HeatPumpID, selections, id)
}
