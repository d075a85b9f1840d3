package models

// CategoryTotal is one entry of the state ranking: the summed installment
// amount of every payment sharing the same UF.
type CategoryTotal struct {
	Category string  `json:"uf" example:"SP"`
	Total    float64 `json:"total" example:"1523400.50"`
	Count    int     `json:"count" example:"2318"`
}
