package service

import (
	"context"
	"errors"

	"github.com/4supreme/business-application/internal/apperror"
	"github.com/4supreme/business-application/internal/dto"
	"github.com/4supreme/business-application/internal/model"
	"github.com/4supreme/business-application/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DocumentService is the posting engine: it owns the draft → posted ⇄ draft
// state machine and is the only writer of product quantity/cost and of the
// stock movement ledger.
type DocumentService interface {
	Create(ctx context.Context, req dto.CreateDocumentRequest) (*dto.DocumentResponse, error)
	Get(ctx context.Context, id uint) (*dto.DocumentResponse, error)
	List(ctx context.Context, filter dto.DocumentFilter) (*dto.DocumentListResponse, error)
	Post(ctx context.Context, id uint) (*dto.DocumentResponse, error)
	Unpost(ctx context.Context, id uint) (*dto.DocumentResponse, error)
	Delete(ctx context.Context, id uint) error
	RecentVendors(ctx context.Context) ([]string, error)
	VendorHistory(ctx context.Context, vendor string, limit int) ([]dto.VendorHistoryRow, error)
}

type documentService struct {
	docs      repository.DocumentRepository
	products  repository.ProductRepository
	movements repository.StockMovementRepository
}

func NewDocumentService(
	docs repository.DocumentRepository,
	products repository.ProductRepository,
	movements repository.StockMovementRepository,
) DocumentService {
	return &documentService{docs: docs, products: products, movements: movements}
}

// ── Create ───────────────────────────────────────────────────────────────────
// Persists the document in draft with Total = Σ(qty*price). The total is fixed
// here and never recomputed on posting.

func (s *documentService) Create(ctx context.Context, req dto.CreateDocumentRequest) (*dto.DocumentResponse, error) {
	docType := model.DocType(req.Type)
	if !docType.Valid() {
		return nil, apperror.NewValidation("type must be %q or %q", model.DocTypePurchase, model.DocTypeSale)
	}
	if len(req.Lines) == 0 {
		return nil, apperror.NewValidation("document must contain at least one line")
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	names := make(map[uint]string, len(req.Lines))
	total := decimal.Zero
	lines := make([]model.DocumentLine, 0, len(req.Lines))
	for _, line := range req.Lines {
		if !line.Qty.IsPositive() {
			return nil, apperror.NewValidation("line quantity must be > 0")
		}
		if line.Price.IsNegative() {
			return nil, apperror.NewValidation("line price must be >= 0")
		}
		p, err := s.products.FindByID(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperror.NewNotFound("product %d not found", line.ProductID)
			}
			return nil, err
		}
		names[p.ID] = p.Name
		total = total.Add(line.Qty.Mul(line.Price))
		lines = append(lines, model.DocumentLine{
			ProductID: line.ProductID,
			Qty:       line.Qty,
			Price:     line.Price,
		})
	}

	doc := &model.Document{
		Type:    docType,
		Status:  model.DocStatusDraft,
		Date:    date,
		Partner: req.Partner,
		Total:   total.Round(2),
		Lines:   lines,
	}
	if err := s.docs.Create(ctx, doc); err != nil {
		return nil, err
	}

	resp := documentToResponse(doc)
	for i := range resp.Lines {
		resp.Lines[i].Product = names[resp.Lines[i].ProductID]
	}
	return resp, nil
}

// ── Post ─────────────────────────────────────────────────────────────────────
// One atomic transaction covering every line-driven product update, the
// movement writes, and the status flip. The document row is locked for the
// whole transaction, so a concurrent Post either waits and then sees "posted"
// (idempotent no-op) or fails with the first one's error.

func (s *documentService) Post(ctx context.Context, id uint) (*dto.DocumentResponse, error) {
	var resp *dto.DocumentResponse
	txErr := runTx(ctx, s.docs.DB(), func(tx *gorm.DB) error {
		doc, err := s.docs.FindByIDTx(tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NewNotFound("document %d not found", id)
			}
			return err
		}

		if doc.Status == model.DocStatusPosted {
			// Already posted: return current state unchanged, no error.
			resp = documentToResponse(doc)
			return nil
		}
		if doc.Status == model.DocStatusCanceled {
			return apperror.NewValidation("document %d is canceled", id)
		}

		totalCOGS := decimal.Zero
		for _, line := range doc.Lines {
			p, err := s.products.FindByIDTx(tx, line.ProductID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperror.NewNotFound("product %d not found", line.ProductID)
				}
				return err
			}

			switch doc.Type {
			case model.DocTypePurchase:
				// Moving-average blend: each receipt folds its price into the
				// running per-unit cost proportional to quantity.
				newQty := p.QtyOnHand.Add(line.Qty)
				if newQty.IsZero() {
					p.AvgCost = line.Price
				} else {
					p.AvgCost = p.QtyOnHand.Mul(p.AvgCost).Add(line.Qty.Mul(line.Price)).Div(newQty)
				}
				p.QtyOnHand = newQty
				if err := s.products.UpdateStockCostTx(tx, p); err != nil {
					return err
				}
				if err := s.movements.CreateTx(tx, &model.StockMovement{
					DocumentID: doc.ID,
					ProductID:  p.ID,
					Qty:        line.Qty,
					Price:      line.Price,
					Direction:  model.DirectionIn,
				}); err != nil {
					return err
				}

			case model.DocTypeSale:
				if p.QtyOnHand.LessThan(line.Qty) {
					return apperror.NewInsufficientStock(p.Name)
				}
				// Average cost is untouched by sales — the cost basis only
				// changes on purchase.
				totalCOGS = totalCOGS.Add(line.Qty.Mul(p.AvgCost))
				p.QtyOnHand = p.QtyOnHand.Sub(line.Qty)
				if err := s.products.UpdateStockCostTx(tx, p); err != nil {
					return err
				}
				if err := s.movements.CreateTx(tx, &model.StockMovement{
					DocumentID: doc.ID,
					ProductID:  p.ID,
					Qty:        line.Qty.Neg(),
					Price:      line.Price,
					Direction:  model.DirectionOut,
				}); err != nil {
					return err
				}
			}
		}

		doc.Status = model.DocStatusPosted
		if doc.Number == nil {
			// Assigned exactly once; survives unpost/repost.
			n := doc.FormatNumber()
			doc.Number = &n
		}
		if doc.Type == model.DocTypeSale {
			doc.TotalCOGS = totalCOGS.Round(2)
			doc.GrossProfit = doc.Total.Sub(doc.TotalCOGS)
		}
		if err := s.docs.UpdateTx(tx, doc); err != nil {
			return err
		}

		resp = documentToResponse(doc)
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return resp, nil
}

// ── Unpost ───────────────────────────────────────────────────────────────────
// Reverses the quantity/cost effect, deletes the document's movement rows, and
// returns the document to draft. The cost reversal is the algebraic inverse of
// the posting formula, not a replay of the movement ledger: it is only exact
// when no other postings touched the product in between. Deliberately kept for
// compatibility with the established behavior.

func (s *documentService) Unpost(ctx context.Context, id uint) (*dto.DocumentResponse, error) {
	var resp *dto.DocumentResponse
	txErr := runTx(ctx, s.docs.DB(), func(tx *gorm.DB) error {
		doc, err := s.docs.FindByIDTx(tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NewNotFound("document %d not found", id)
			}
			return err
		}

		if doc.Status != model.DocStatusPosted {
			// Nothing to reverse.
			resp = documentToResponse(doc)
			return nil
		}

		for _, line := range doc.Lines {
			p, err := s.products.FindByIDTx(tx, line.ProductID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperror.NewNotFound("product %d not found", line.ProductID)
				}
				return err
			}

			switch doc.Type {
			case model.DocTypePurchase:
				newQty := p.QtyOnHand.Sub(line.Qty)
				if newQty.IsNegative() {
					return apperror.NewNegativeStock(p.Name)
				}
				if newQty.IsZero() {
					p.QtyOnHand = decimal.Zero
					p.AvgCost = decimal.Zero
				} else {
					p.AvgCost = p.QtyOnHand.Mul(p.AvgCost).Sub(line.Qty.Mul(line.Price)).Div(newQty)
					p.QtyOnHand = newQty
				}

			case model.DocTypeSale:
				// Sales never altered the cost basis, so only the quantity
				// comes back.
				p.QtyOnHand = p.QtyOnHand.Add(line.Qty)
			}

			if err := s.products.UpdateStockCostTx(tx, p); err != nil {
				return err
			}
		}

		if err := s.movements.DeleteByDocumentTx(tx, doc.ID); err != nil {
			return err
		}

		doc.Status = model.DocStatusDraft
		doc.TotalCOGS = decimal.Zero
		doc.GrossProfit = decimal.Zero
		if err := s.docs.UpdateTx(tx, doc); err != nil {
			return err
		}

		resp = documentToResponse(doc)
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return resp, nil
}

// ── Queries / lifecycle helpers ──────────────────────────────────────────────

func (s *documentService) Get(ctx context.Context, id uint) (*dto.DocumentResponse, error) {
	doc, err := s.docs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFound("document %d not found", id)
		}
		return nil, err
	}
	return documentToResponse(doc), nil
}

func (s *documentService) List(ctx context.Context, filter dto.DocumentFilter) (*dto.DocumentListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}
	docs, total, err := s.docs.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.DocumentResponse, 0, len(docs))
	for i := range docs {
		data = append(data, *documentToResponse(&docs[i]))
	}
	return &dto.DocumentListResponse{
		Data:  data,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *documentService) Delete(ctx context.Context, id uint) error {
	doc, err := s.docs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NewNotFound("document %d not found", id)
		}
		return err
	}
	if doc.Status == model.DocStatusPosted {
		return apperror.NewValidation("cannot delete a posted document: unpost it first")
	}
	return s.docs.Delete(ctx, id)
}

func (s *documentService) RecentVendors(ctx context.Context) ([]string, error) {
	return s.docs.RecentVendors(ctx, 5)
}

func (s *documentService) VendorHistory(ctx context.Context, vendor string, limit int) ([]dto.VendorHistoryRow, error) {
	if vendor == "" {
		return nil, apperror.NewValidation("vendor is required")
	}
	if limit < 1 || limit > 500 {
		limit = 30
	}
	rows, err := s.docs.VendorHistory(ctx, vendor, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VendorHistoryRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.VendorHistoryRow{
			Date:        row.Date.Format("2006-01-02"),
			ProductName: row.ProductName,
			Qty:         row.Qty,
			Price:       row.Price,
			Total:       row.Qty.Mul(row.Price),
		})
	}
	return out, nil
}

// ── Mapping ──────────────────────────────────────────────────────────────────

func documentToResponse(d *model.Document) *dto.DocumentResponse {
	lines := make([]dto.DocumentLineResponse, 0, len(d.Lines))
	for _, line := range d.Lines {
		name := ""
		if line.Product != nil {
			name = line.Product.Name
		}
		lines = append(lines, dto.DocumentLineResponse{
			ProductID: line.ProductID,
			Product:   name,
			Qty:       line.Qty,
			Price:     line.Price,
		})
	}
	return &dto.DocumentResponse{
		ID:          d.ID,
		Type:        string(d.Type),
		Status:      string(d.Status),
		Number:      d.Number,
		Date:        d.Date.Format("2006-01-02"),
		Partner:     d.Partner,
		Total:       d.Total,
		TotalCOGS:   d.TotalCOGS,
		GrossProfit: d.GrossProfit,
		Lines:       lines,
	}
}
