package etherscan

import "context"

// Transactions exposes the transaction module endpoints.
type Transactions struct {
	client *Client
}

// ContractExecutionStatus is the outcome of the EVM execution of a
// transaction as reported by the getstatus endpoint.
type ContractExecutionStatus struct {
	IsError        StringNumber `json:"isError"`
	ErrDescription string       `json:"errDescription"`
}

// Successful reports whether the execution completed without error.
func (s *ContractExecutionStatus) Successful() bool {
	return s.IsError.Value() == 0
}

// Failed reports whether the execution errored.
func (s *ContractExecutionStatus) Failed() bool {
	return s.IsError.Value() != 0
}

// ErrorMessage returns the error description, if any.
func (s *ContractExecutionStatus) ErrorMessage() (string, bool) {
	if s.ErrDescription == "" {
		return "", false
	}
	return s.ErrDescription, true
}

// TransactionReceiptStatus is the post-Byzantium receipt status of a
// transaction: 1 for success, 0 for failure.
type TransactionReceiptStatus struct {
	Status StringNumber `json:"status"`
}

// Successful reports whether the receipt records success.
func (s *TransactionReceiptStatus) Successful() bool {
	return s.Status.Value() == 1
}

// ExecutionStatus fetches the EVM execution outcome of a transaction.
func (t *Transactions) ExecutionStatus(ctx context.Context, txHash string) (*ContractExecutionStatus, error) {
	hash, err := ParseTxHash(txHash)
	if err != nil {
		return nil, err
	}
	params := []queryParam{{"txhash", hash.String()}}
	status, err := apiGet[ContractExecutionStatus](ctx, t.client, "transaction", "getstatus", params)
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// ReceiptStatus fetches the receipt status of a transaction. Only
// meaningful for post-Byzantium transactions; older transactions have
// no receipt status.
func (t *Transactions) ReceiptStatus(ctx context.Context, txHash string) (*TransactionReceiptStatus, error) {
	hash, err := ParseTxHash(txHash)
	if err != nil {
		return nil, err
	}
	params := []queryParam{{"txhash", hash.String()}}
	status, err := apiGet[TransactionReceiptStatus](ctx, t.client, "transaction", "gettxreceiptstatus", params)
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// TransactionStatus combines the execution and receipt views of one
// transaction. Either view may be nil when its lookup failed or the
// chain has no data for it.
type TransactionStatus struct {
	Hash      TxHash
	Execution *ContractExecutionStatus
	Receipt   *TransactionReceiptStatus
}

// Successful reports the merged outcome. The receipt status, when
// present, is authoritative and overrides the execution view. known is
// false when neither view is available, which is absence of data, not
// failure.
func (s *TransactionStatus) Successful() (ok, known bool) {
	if s.Receipt != nil {
		return s.Receipt.Successful(), true
	}
	if s.Execution != nil {
		return s.Execution.Successful(), true
	}
	return false, false
}

// Description returns a short human-readable summary of the status.
func (s *TransactionStatus) Description() string {
	ok, known := s.Successful()
	switch {
	case !known:
		return "unknown"
	case ok:
		return "success"
	default:
		if s.Execution != nil {
			if msg, has := s.Execution.ErrorMessage(); has {
				return "failed: " + msg
			}
		}
		return "failed"
	}
}

// Status fetches both status views of a transaction and merges them.
// A failing sub-lookup leaves its view nil rather than failing the
// whole call: partial status is still useful. Only a malformed hash is
// an error.
func (t *Transactions) Status(ctx context.Context, txHash string) (*TransactionStatus, error) {
	hash, err := ParseTxHash(txHash)
	if err != nil {
		return nil, err
	}

	status := &TransactionStatus{Hash: hash}
	params := []queryParam{{"txhash", hash.String()}}

	if exec, err := apiGet[ContractExecutionStatus](ctx, t.client, "transaction", "getstatus", params); err == nil {
		status.Execution = &exec
	} else {
		t.client.logger.Debug("execution status lookup failed", "txhash", hash, "error", err)
	}

	if receipt, err := apiGet[TransactionReceiptStatus](ctx, t.client, "transaction", "gettxreceiptstatus", params); err == nil {
		status.Receipt = &receipt
	} else {
		t.client.logger.Debug("receipt status lookup failed", "txhash", hash, "error", err)
	}

	return status, nil
}

// BatchStatus returns a query that resolves the status of several
// transactions sequentially.
func (t *Transactions) BatchStatus() *BatchStatusQuery {
	return &BatchStatusQuery{client: t.client}
}

// BatchStatusQuery resolves the status of a set of transactions. By
// default both views are fetched per transaction; ExecutionOnly and
// ReceiptOnly restrict the lookups.
type BatchStatusQuery struct {
	client        *Client
	hashes        []string
	executionOnly bool
	receiptOnly   bool
}

// Transaction adds one transaction hash to the batch.
func (q *BatchStatusQuery) Transaction(txHash string) *BatchStatusQuery {
	q.hashes = append(q.hashes, txHash)
	return q
}

// Transactions adds several transaction hashes to the batch.
func (q *BatchStatusQuery) Transactions(txHashes []string) *BatchStatusQuery {
	q.hashes = append(q.hashes, txHashes...)
	return q
}

// ExecutionOnly restricts the batch to the execution view.
func (q *BatchStatusQuery) ExecutionOnly() *BatchStatusQuery {
	q.executionOnly = true
	q.receiptOnly = false
	return q
}

// ReceiptOnly restricts the batch to the receipt view.
func (q *BatchStatusQuery) ReceiptOnly() *BatchStatusQuery {
	q.receiptOnly = true
	q.executionOnly = false
	return q
}

// Do validates every hash up front and then resolves the batch. A
// single malformed hash fails the whole batch before any request is
// issued. Per-transaction lookup failures leave the corresponding view
// nil, matching Status.
func (q *BatchStatusQuery) Do(ctx context.Context) ([]TransactionStatus, error) {
	if len(q.hashes) == 0 {
		return nil, errInvalidParams("at least one transaction hash required")
	}

	hashes := make([]TxHash, 0, len(q.hashes))
	for _, raw := range q.hashes {
		hash, err := ParseTxHash(raw)
		if err != nil {
			return nil, err
		}
		hashes = append(hashes, hash)
	}

	results := make([]TransactionStatus, 0, len(hashes))
	for _, hash := range hashes {
		status := TransactionStatus{Hash: hash}
		params := []queryParam{{"txhash", hash.String()}}

		if !q.receiptOnly {
			if exec, err := apiGet[ContractExecutionStatus](ctx, q.client, "transaction", "getstatus", params); err == nil {
				status.Execution = &exec
			} else {
				q.client.logger.Debug("execution status lookup failed", "txhash", hash, "error", err)
			}
		}
		if !q.executionOnly {
			if receipt, err := apiGet[TransactionReceiptStatus](ctx, q.client, "transaction", "gettxreceiptstatus", params); err == nil {
				status.Receipt = &receipt
			} else {
				q.client.logger.Debug("receipt status lookup failed", "txhash", hash, "error", err)
			}
		}
		results = append(results, status)
	}
	return results, nil
}
