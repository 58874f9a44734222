package service

import (
	"context"

	"github.com/4supreme/business-application/internal/apperror"
	"github.com/4supreme/business-application/internal/dto"
	"github.com/4supreme/business-application/internal/model"
	"github.com/4supreme/business-application/internal/repository"
)

const defaultRecentLimit = 10

// TreasuryService is the cash/bank ledger: append-only transactions plus
// balance aggregation. Independent of inventory.
type TreasuryService interface {
	Record(ctx context.Context, req dto.RecordTransactionRequest) (*dto.CashTransactionResponse, error)
	Balance(ctx context.Context) (*dto.BalanceResponse, error)
	Recent(ctx context.Context, limit int) ([]dto.CashTransactionResponse, error)
}

type treasuryService struct {
	repo repository.TreasuryRepository
}

func NewTreasuryService(repo repository.TreasuryRepository) TreasuryService {
	return &treasuryService{repo: repo}
}

func (s *treasuryService) Record(ctx context.Context, req dto.RecordTransactionRequest) (*dto.CashTransactionResponse, error) {
	account := model.Account(req.Account)
	if !account.Valid() {
		return nil, apperror.NewValidation("account must be %q or %q", model.AccountCash, model.AccountBank)
	}
	direction := model.Direction(req.Direction)
	if !direction.Valid() {
		return nil, apperror.NewValidation("direction must be %q or %q", model.DirectionIn, model.DirectionOut)
	}
	if !req.Amount.IsPositive() {
		return nil, apperror.NewValidation("amount must be > 0")
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	txn := &model.CashTransaction{
		Date:         date,
		Account:      account,
		Direction:    direction,
		Amount:       req.Amount,
		Counterparty: req.Counterparty,
		Note:         req.Note,
	}
	if err := s.repo.Create(ctx, txn); err != nil {
		return nil, err
	}
	return transactionToResponse(txn), nil
}

func (s *treasuryService) Balance(ctx context.Context) (*dto.BalanceResponse, error) {
	sums, err := s.repo.SumByAccountDirection(ctx)
	if err != nil {
		return nil, err
	}

	cash := sums[model.AccountCash][model.DirectionIn].
		Sub(sums[model.AccountCash][model.DirectionOut]).Round(2)
	bank := sums[model.AccountBank][model.DirectionIn].
		Sub(sums[model.AccountBank][model.DirectionOut]).Round(2)

	return &dto.BalanceResponse{
		Cash:  cash,
		Bank:  bank,
		Total: cash.Add(bank).Round(2),
	}, nil
}

func (s *treasuryService) Recent(ctx context.Context, limit int) ([]dto.CashTransactionResponse, error) {
	if limit < 1 || limit > 100 {
		limit = defaultRecentLimit
	}
	txns, err := s.repo.Recent(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CashTransactionResponse, 0, len(txns))
	for i := range txns {
		out = append(out, *transactionToResponse(&txns[i]))
	}
	return out, nil
}

func transactionToResponse(t *model.CashTransaction) *dto.CashTransactionResponse {
	return &dto.CashTransactionResponse{
		ID:           t.ID,
		Date:         t.Date.Format("2006-01-02"),
		Account:      string(t.Account),
		Direction:    string(t.Direction),
		Amount:       t.Amount,
		Counterparty: t.Counterparty,
		Note:         t.Note,
	}
}
