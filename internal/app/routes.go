package app

import "github.com/BlacAnon1/banqa-wallet-service/internal/handlers"

func (a *App) RegisterRoutes(
	wallet *handlers.WalletHandler,
	transfer *handlers.TransferHandler,
	bill *handlers.BillHandler,
	withdrawal *handlers.WithdrawalHandler,
	payment *handlers.PaymentHandler,
) {
	api := a.Router.Group("/", handlers.RequireAuth())

	api.POST("/wallet/sync", wallet.Sync)

	api.GET("/recipients/:account_id", transfer.SearchRecipient)
	api.POST("/transfers", transfer.Process)

	api.POST("/bills/verify", bill.Verify)
	api.POST("/bills/pay", bill.Pay)

	api.POST("/withdrawals", withdrawal.Process)

	api.POST("/payments/initialize", payment.Initialize)
	api.POST("/payments/callback", payment.Callback)
}
