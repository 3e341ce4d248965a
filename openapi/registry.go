package openapi

func init() {
	register(
		func() Message { return &HeartbeatEvent{} },
		func() Message { return &ErrorRes{} },
		func() Message { return &OAErrorRes{} },

		func() Message { return &ApplicationAuthReq{} },
		func() Message { return &ApplicationAuthRes{} },
		func() Message { return &AccountAuthReq{} },
		func() Message { return &AccountAuthRes{} },
		func() Message { return &VersionReq{} },
		func() Message { return &VersionRes{} },
		func() Message { return &GetAccountsByAccessTokenReq{} },
		func() Message { return &GetAccountsByAccessTokenRes{} },
		func() Message { return &AccountLogoutReq{} },
		func() Message { return &AccountLogoutRes{} },
		func() Message { return &RefreshTokenReq{} },
		func() Message { return &RefreshTokenRes{} },
		func() Message { return &AccountsTokenInvalidatedEvent{} },
		func() Message { return &ClientDisconnectEvent{} },

		func() Message { return &AssetListReq{} },
		func() Message { return &AssetListRes{} },
		func() Message { return &AssetClassListReq{} },
		func() Message { return &AssetClassListRes{} },
		func() Message { return &SymbolCategoryListReq{} },
		func() Message { return &SymbolCategoryListRes{} },
		func() Message { return &SymbolsListReq{} },
		func() Message { return &SymbolsListRes{} },
		func() Message { return &SymbolByIDReq{} },
		func() Message { return &SymbolByIDRes{} },

		func() Message { return &SubscribeSpotsReq{} },
		func() Message { return &SubscribeSpotsRes{} },
		func() Message { return &UnsubscribeSpotsReq{} },
		func() Message { return &UnsubscribeSpotsRes{} },
		func() Message { return &SubscribeLiveTrendbarReq{} },
		func() Message { return &SubscribeLiveTrendbarRes{} },
		func() Message { return &UnsubscribeLiveTrendbarReq{} },
		func() Message { return &UnsubscribeLiveTrendbarRes{} },
		func() Message { return &GetTrendbarsReq{} },
		func() Message { return &GetTrendbarsRes{} },
		func() Message { return &GetTickDataReq{} },
		func() Message { return &GetTickDataRes{} },
		func() Message { return &SpotEvent{} },

		func() Message { return &NewOrderReq{} },
		func() Message { return &CancelOrderReq{} },
		func() Message { return &AmendOrderReq{} },
		func() Message { return &AmendPositionSLTPReq{} },
		func() Message { return &ClosePositionReq{} },
		func() Message { return &ExecutionEvent{} },
		func() Message { return &OrderErrorEvent{} },
		func() Message { return &TraderReq{} },
		func() Message { return &TraderRes{} },
		func() Message { return &ReconcileReq{} },
		func() Message { return &ReconcileRes{} },
		func() Message { return &OrderListReq{} },
		func() Message { return &OrderListRes{} },
		func() Message { return &OrderDetailsReq{} },
		func() Message { return &OrderDetailsRes{} },
		func() Message { return &DealListReq{} },
		func() Message { return &DealListRes{} },
		func() Message { return &GetPositionUnrealizedPnLReq{} },
		func() Message { return &GetPositionUnrealizedPnLRes{} },
	)
}
