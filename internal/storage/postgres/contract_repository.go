package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/omniwork/contracthub/internal/contract"
)

// ContractRepository implements the contract.Repository interface using PostgreSQL
type ContractRepository struct {
	db *pgxpool.Pool
}

var _ contract.Repository = (*ContractRepository)(nil)

var contractColumns = []string{
	"contract_id",
	"module",
	"method",
	"path",
	"summary",
	"entity",
	"request",
	"response",
	"complete",
}

// Get retrieves multiple contracts matching the given filter, ordered by module and path
func (repo *ContractRepository) Get(ctx context.Context, filter *contract.Filter, page, limit uint64) ([]*contract.Contract, uint64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	conditions := filterConditions(filter)

	countQuery := squirrel.Select("COUNT(*)").From("contracts")
	for _, condition := range conditions {
		countQuery = countQuery.Where(condition)
	}
	sql, vals, err := countQuery.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, 0, err
	}
	var n uint64
	if err := repo.db.QueryRow(ctx, sql, vals...).Scan(&n); err != nil {
		return nil, 0, err
	}
	if n == 0 {
		return []*contract.Contract{}, 0, nil
	}

	query := squirrel.Select(contractColumns...).
		From("contracts").
		OrderBy("module", "path", "method").
		Offset((page - 1) * limit).
		Limit(limit)
	for _, condition := range conditions {
		query = query.Where(condition)
	}
	sql, vals, err = query.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := repo.db.Query(ctx, sql, vals...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []*contract.Contract{}, n, nil
		}
		return nil, 0, err
	}
	defer rows.Close()

	contracts := []*contract.Contract{}
	for rows.Next() {
		obj, err := scanContract(rows)
		if err != nil {
			return nil, 0, err
		}
		contracts = append(contracts, obj)
	}

	return contracts, n, nil
}

// GetByID retrieves a contract by its ID
func (repo *ContractRepository) GetByID(ctx context.Context, id uuid.UUID) (*contract.Contract, error) {
	sql, vals, err := squirrel.Select(contractColumns...).
		From("contracts").
		Where(squirrel.Eq{"contract_id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	obj, err := scanContract(repo.db.QueryRow(ctx, sql, vals...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return obj, nil
}

// GetByRoute retrieves a contract by its unique (module, method, path) combination
func (repo *ContractRepository) GetByRoute(ctx context.Context, module, method, path string) (*contract.Contract, error) {
	sql, vals, err := squirrel.Select(contractColumns...).
		From("contracts").
		Where(squirrel.Eq{"module": module, "method": method, "path": path}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	obj, err := scanContract(repo.db.QueryRow(ctx, sql, vals...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return obj, nil
}

// Create registers a new contract
func (repo *ContractRepository) Create(ctx context.Context, create *contract.Create) (*contract.Contract, error) {
	existing, err := repo.GetByRoute(ctx, create.Module, create.Method, create.Path)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, contract.ErrDuplicateRoute
	}

	obj := &contract.Contract{
		ID:       uuid.New(),
		Module:   create.Module,
		Method:   create.Method,
		Path:     create.Path,
		Summary:  create.Summary,
		Entity:   create.Entity,
		Request:  create.Request,
		Response: create.Response,
		Complete: create.Complete,
	}
	if obj.Request == nil {
		obj.Request = []contract.Field{}
	}

	request, err := json.Marshal(obj.Request)
	if err != nil {
		return nil, err
	}

	_, err = repo.db.Exec(
		ctx,
		"INSERT INTO contracts VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)",
		obj.ID,
		obj.Module,
		obj.Method,
		obj.Path,
		obj.Summary,
		obj.Entity,
		request,
		string(obj.Response),
		obj.Complete,
	)
	if err != nil {
		return nil, err
	}

	return obj, nil
}

// Update updates an existing contract
func (repo *ContractRepository) Update(ctx context.Context, id uuid.UUID, update *contract.Update) (*contract.Contract, error) {
	query := squirrel.Update("contracts").Where(squirrel.Eq{"contract_id": id})
	changed := false
	if update.Summary != nil {
		query = query.Set("summary", *update.Summary)
		changed = true
	}
	if update.Entity != nil {
		query = query.Set("entity", *update.Entity)
		changed = true
	}
	if update.Request != nil {
		request, err := json.Marshal(*update.Request)
		if err != nil {
			return nil, err
		}
		query = query.Set("request", request)
		changed = true
	}
	if update.Response != nil {
		query = query.Set("response", string(*update.Response))
		changed = true
	}
	if update.Complete != nil {
		query = query.Set("complete", *update.Complete)
		changed = true
	}

	if changed {
		sql, vals, err := query.PlaceholderFormat(squirrel.Dollar).ToSql()
		if err != nil {
			return nil, err
		}
		if _, err := repo.db.Exec(ctx, sql, vals...); err != nil {
			return nil, err
		}
	}

	return repo.GetByID(ctx, id)
}

// Delete deletes a contract by its ID
func (repo *ContractRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := repo.db.Exec(ctx, "DELETE FROM contracts WHERE contract_id = $1", id)
	return err
}

// Modules summarizes all modules contracts are registered for, ordered by module name
func (repo *ContractRepository) Modules(ctx context.Context) ([]*contract.ModuleInfo, error) {
	rows, err := repo.db.Query(
		ctx,
		"SELECT module, COUNT(*), COUNT(*) FILTER (WHERE complete) FROM contracts GROUP BY module ORDER BY module",
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []*contract.ModuleInfo{}, nil
		}
		return nil, err
	}
	defer rows.Close()

	modules := []*contract.ModuleInfo{}
	for rows.Next() {
		obj := new(contract.ModuleInfo)
		if err := rows.Scan(&obj.Name, &obj.Contracts, &obj.Complete); err != nil {
			return nil, err
		}
		modules = append(modules, obj)
	}
	return modules, nil
}

func filterConditions(filter *contract.Filter) []squirrel.Sqlizer {
	if filter == nil {
		return nil
	}
	var conditions []squirrel.Sqlizer
	if filter.Module != nil {
		conditions = append(conditions, squirrel.Eq{"module": *filter.Module})
	}
	if filter.Method != nil {
		conditions = append(conditions, squirrel.Eq{"method": *filter.Method})
	}
	if filter.Complete != nil {
		conditions = append(conditions, squirrel.Eq{"complete": *filter.Complete})
	}
	if filter.Search != nil && *filter.Search != "" {
		pattern := "%" + *filter.Search + "%"
		conditions = append(conditions, squirrel.Or{
			squirrel.ILike{"path": pattern},
			squirrel.ILike{"summary": pattern},
			squirrel.ILike{"entity": pattern},
		})
	}
	return conditions
}

func scanContract(row pgx.Row) (*contract.Contract, error) {
	obj := new(contract.Contract)
	var request []byte
	var response string
	err := row.Scan(
		&obj.ID,
		&obj.Module,
		&obj.Method,
		&obj.Path,
		&obj.Summary,
		&obj.Entity,
		&request,
		&response,
		&obj.Complete,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(request, &obj.Request); err != nil {
		return nil, err
	}
	obj.Response = contract.Shape(response)
	return obj, nil
}
