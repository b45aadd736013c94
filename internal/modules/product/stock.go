package product

// StockCheck is the result of a stock-availability probe.
type StockCheck struct {
	OK        bool `json:"ok"`
	Available int  `json:"available,omitempty"`
}

// CheckStock reports whether requestedQty units of p can be satisfied. It is
// a pure predicate: no locking, no reservation. Callers that mutate stock
// based on the answer must run the check and the mutation inside the same
// dbx unit of work.
func CheckStock(p *Product, requestedQty int) StockCheck {
	if requestedQty <= p.Stock {
		return StockCheck{OK: true}
	}
	return StockCheck{OK: false, Available: p.Stock}
}
