package resources

import (
	"context"

	"github.com/vitwit/checkout/transport"
	"github.com/vitwit/checkout/types"
)

// DisputeEvidencePurpose is the upload purpose accepted by the files API.
const DisputeEvidencePurpose = "dispute_evidence"

// Files uploads dispute evidence and retrieves file metadata.
type Files struct {
	c         *Caller
	multipart transport.MultipartBuilder
}

// Upload sends file as a multipart form with the given purpose. An empty
// field name defaults to "file".
func (f *Files) Upload(ctx context.Context, purpose string, file transport.FormFile) (*types.ResponseEnvelope, error) {
	if file.Field == "" {
		file.Field = "file"
	}
	body, err := f.multipart.Build(types.Params{{Key: "purpose", Value: purpose}}, file)
	if err != nil {
		return nil, err
	}
	return f.c.Call(ctx, "files.upload", Request{Prebuilt: body})
}

func (f *Files) Get(ctx context.Context, id string) (*types.ResponseEnvelope, error) {
	return f.c.do(ctx, "files.get", id)
}

type Reports struct{ c *Caller }

func (r *Reports) List(ctx context.Context, params types.Params) (*types.ResponseEnvelope, error) {
	return r.c.query(ctx, "reports.list", params)
}

func (r *Reports) Get(ctx context.Context, id string) (*types.ResponseEnvelope, error) {
	return r.c.do(ctx, "reports.get", id)
}

// GetFile downloads a report file. The envelope body holds the raw bytes.
func (r *Reports) GetFile(ctx context.Context, reportID, fileID string) (*types.ResponseEnvelope, error) {
	return r.c.do(ctx, "reports.file", reportID, fileID)
}

type Reconciliation struct{ c *Caller }

func (r *Reconciliation) GetPayments(ctx context.Context, params types.Params) (*types.ResponseEnvelope, error) {
	return r.c.query(ctx, "reconciliation.payments", params)
}

// GetPaymentsCSV returns the payments report as CSV bytes.
func (r *Reconciliation) GetPaymentsCSV(ctx context.Context, params types.Params) (*types.ResponseEnvelope, error) {
	return r.c.query(ctx, "reconciliation.payments_csv", params)
}

func (r *Reconciliation) GetStatements(ctx context.Context, params types.Params) (*types.ResponseEnvelope, error) {
	return r.c.query(ctx, "reconciliation.statements", params)
}

// GetStatementsCSV returns the payments of one statement as CSV bytes.
func (r *Reconciliation) GetStatementsCSV(ctx context.Context, statementID string) (*types.ResponseEnvelope, error) {
	return r.c.do(ctx, "reconciliation.statement_csv", statementID)
}
