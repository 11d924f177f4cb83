package billplz

// FpxBank is a bank that can be picked on the FPX online banking page.
type FpxBank struct {
	BankCode string `json:"bank_code"`
	BankName string `json:"bank_name"`
}

// FpxBanks lists the FPX banks for env. Staging appends the sandbox test
// banks after the real ones. A new slice is built on every call.
func FpxBanks(env Environment) []FpxBank {
	banks := []FpxBank{
		{BankCode: "ABMB0212", BankName: "Alliance Bank"},
		{BankCode: "ABB0233", BankName: "Affin Bank"},
		{BankCode: "AMBB0209", BankName: "AmBank"},
		{BankCode: "BCBB0235", BankName: "CIMB Clicks"},
		{BankCode: "BIMB0340", BankName: "Bank Islam"},
		{BankCode: "BKRM0602", BankName: "Bank Rakyat"},
		{BankCode: "BMMB0341", BankName: "Bank Muamalat"},
		{BankCode: "BSN0601", BankName: "BSN"},
		{BankCode: "CIT0217", BankName: "Citibank Berhad"},
		{BankCode: "HLB0224", BankName: "Hong Leong Bank"},
		{BankCode: "HSBC0223", BankName: "HSBC Bank"},
		{BankCode: "KFH0346", BankName: "Kuwait Finance House"},
		{BankCode: "MB2U0227", BankName: "Maybank2u"},
		{BankCode: "MBB0227", BankName: "Maybank2E"},
		{BankCode: "MBB0228", BankName: "Maybank2E"},
		{BankCode: "OCBC0229", BankName: "OCBC Bank"},
		{BankCode: "PBB0233", BankName: "Public Bank"},
		{BankCode: "RHB0218", BankName: "RHB Now"},
		{BankCode: "SCB0216", BankName: "Standard Chartered"},
		{BankCode: "UOB0226", BankName: "UOB Bank"},
	}

	if env == Staging {
		banks = append(banks,
			FpxBank{BankCode: "TEST0001", BankName: "Test 0001"},
			FpxBank{BankCode: "TEST0002", BankName: "Test 0002"},
			FpxBank{BankCode: "TEST0003", BankName: "Test 0003"},
			FpxBank{BankCode: "TEST0004", BankName: "Test 0004"},
			FpxBank{BankCode: "TEST0021", BankName: "Test 0021"},
			FpxBank{BankCode: "TEST0022", BankName: "Test 0022"},
			FpxBank{BankCode: "TEST0023", BankName: "Test 0023"},
		)
	}

	return banks
}

func (c *Client) FpxBanks() []FpxBank {
	return FpxBanks(c.environment)
}
