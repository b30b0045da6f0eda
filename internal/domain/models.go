package domain

import "time"

// Product is one row of the product master. Code is the customer-facing
// JAN/EAN code; PrdID is the internal identifier assigned by the store.
type Product struct {
	PrdID int64  `json:"prd_id"`
	Code  int64  `json:"code"`
	Name  string `json:"name"`
	Price int    `json:"price"`
	TaxCd string `json:"tax_cd"`
}

type Trade struct {
	TrdID       int64     `json:"trd_id"`
	Datetime    time.Time `json:"datetime"`
	EmpCd       string    `json:"emp_cd"`
	StoreCd     string    `json:"store_cd"`
	PosNo       string    `json:"pos_no"`
	TtlAmtExTax int       `json:"ttl_amt_ex_tax"`
	TotalAmt    int       `json:"total_amt"`
}

// TradeLine snapshots the product fields at the time of sale so later
// catalog edits never rewrite history.
type TradeLine struct {
	TrdID        int64  `json:"-"`
	DtlID        int    `json:"dtl_id"`
	PrdID        int64  `json:"prd_id"`
	PrdCode      string `json:"prd_code"`
	PrdName      string `json:"prd_name"`
	PrdPrice     int    `json:"prd_price"`
	TaxCd        string `json:"tax_cd"`
	Qty          int    `json:"qty"`
	LineAmtExTax int    `json:"line_amt_ex_tax"`
	LineTax      int    `json:"line_tax"`
	LineAmt      int    `json:"line_amt"`
}
