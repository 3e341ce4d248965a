package openapi

// Common payload types.
const (
	PayloadTypeProtoMessage   PayloadType = 5
	PayloadTypeErrorRes       PayloadType = 50
	PayloadTypeHeartbeatEvent PayloadType = 51
)

// Open API payload types (ProtoOAPayloadType).
const (
	PayloadTypeApplicationAuthReq            PayloadType = 2100
	PayloadTypeApplicationAuthRes            PayloadType = 2101
	PayloadTypeAccountAuthReq                PayloadType = 2102
	PayloadTypeAccountAuthRes                PayloadType = 2103
	PayloadTypeVersionReq                    PayloadType = 2104
	PayloadTypeVersionRes                    PayloadType = 2105
	PayloadTypeNewOrderReq                   PayloadType = 2106
	PayloadTypeCancelOrderReq                PayloadType = 2108
	PayloadTypeAmendOrderReq                 PayloadType = 2109
	PayloadTypeAmendPositionSLTPReq          PayloadType = 2110
	PayloadTypeClosePositionReq              PayloadType = 2111
	PayloadTypeAssetListReq                  PayloadType = 2112
	PayloadTypeAssetListRes                  PayloadType = 2113
	PayloadTypeSymbolsListReq                PayloadType = 2114
	PayloadTypeSymbolsListRes                PayloadType = 2115
	PayloadTypeSymbolByIDReq                 PayloadType = 2116
	PayloadTypeSymbolByIDRes                 PayloadType = 2117
	PayloadTypeTraderReq                     PayloadType = 2121
	PayloadTypeTraderRes                     PayloadType = 2122
	PayloadTypeReconcileReq                  PayloadType = 2124
	PayloadTypeReconcileRes                  PayloadType = 2125
	PayloadTypeExecutionEvent                PayloadType = 2126
	PayloadTypeSubscribeSpotsReq             PayloadType = 2127
	PayloadTypeSubscribeSpotsRes             PayloadType = 2128
	PayloadTypeUnsubscribeSpotsReq           PayloadType = 2129
	PayloadTypeUnsubscribeSpotsRes           PayloadType = 2130
	PayloadTypeSpotEvent                     PayloadType = 2131
	PayloadTypeOrderErrorEvent               PayloadType = 2132
	PayloadTypeDealListReq                   PayloadType = 2133
	PayloadTypeDealListRes                   PayloadType = 2134
	PayloadTypeSubscribeLiveTrendbarReq      PayloadType = 2135
	PayloadTypeUnsubscribeLiveTrendbarReq    PayloadType = 2136
	PayloadTypeGetTrendbarsReq               PayloadType = 2137
	PayloadTypeGetTrendbarsRes               PayloadType = 2138
	PayloadTypeOAErrorRes                    PayloadType = 2142
	PayloadTypeGetTickDataReq                PayloadType = 2145
	PayloadTypeGetTickDataRes                PayloadType = 2146
	PayloadTypeAccountsTokenInvalidatedEvent PayloadType = 2147
	PayloadTypeClientDisconnectEvent         PayloadType = 2148
	PayloadTypeGetAccountsByAccessTokenReq   PayloadType = 2149
	PayloadTypeGetAccountsByAccessTokenRes   PayloadType = 2150
	PayloadTypeAssetClassListReq             PayloadType = 2153
	PayloadTypeAssetClassListRes             PayloadType = 2154
	PayloadTypeSymbolCategoryReq             PayloadType = 2160
	PayloadTypeSymbolCategoryRes             PayloadType = 2161
	PayloadTypeAccountLogoutReq              PayloadType = 2162
	PayloadTypeAccountLogoutRes              PayloadType = 2163
	PayloadTypeSubscribeLiveTrendbarRes      PayloadType = 2165
	PayloadTypeUnsubscribeLiveTrendbarRes    PayloadType = 2166
	PayloadTypeRefreshTokenReq               PayloadType = 2173
	PayloadTypeRefreshTokenRes               PayloadType = 2174
	PayloadTypeOrderListReq                  PayloadType = 2175
	PayloadTypeOrderListRes                  PayloadType = 2176
	PayloadTypeOrderDetailsReq               PayloadType = 2181
	PayloadTypeOrderDetailsRes               PayloadType = 2182
	PayloadTypeGetPositionUnrealizedPnLReq   PayloadType = 2187
	PayloadTypeGetPositionUnrealizedPnLRes   PayloadType = 2188
)

// OrderType mirrors ProtoOAOrderType.
type OrderType int32

const (
	OrderTypeMarket           OrderType = 1
	OrderTypeLimit            OrderType = 2
	OrderTypeStop             OrderType = 3
	OrderTypeStopLossTakeProf OrderType = 4
	OrderTypeMarketRange      OrderType = 5
	OrderTypeStopLimit        OrderType = 6
)

// TradeSide mirrors ProtoOATradeSide.
type TradeSide int32

const (
	TradeSideBuy  TradeSide = 1
	TradeSideSell TradeSide = 2
)

// TrendbarPeriod mirrors ProtoOATrendbarPeriod.
type TrendbarPeriod int32

const (
	PeriodM1  TrendbarPeriod = 1
	PeriodM2  TrendbarPeriod = 2
	PeriodM3  TrendbarPeriod = 3
	PeriodM4  TrendbarPeriod = 4
	PeriodM5  TrendbarPeriod = 5
	PeriodM10 TrendbarPeriod = 6
	PeriodM15 TrendbarPeriod = 7
	PeriodM30 TrendbarPeriod = 8
	PeriodH1  TrendbarPeriod = 9
	PeriodH4  TrendbarPeriod = 10
	PeriodH12 TrendbarPeriod = 11
	PeriodD1  TrendbarPeriod = 12
	PeriodW1  TrendbarPeriod = 13
	PeriodMN1 TrendbarPeriod = 14
)

// QuoteType mirrors ProtoOAQuoteType.
type QuoteType int32

const (
	QuoteTypeBid QuoteType = 1
	QuoteTypeAsk QuoteType = 2
)

// ExecutionType mirrors ProtoOAExecutionType.
type ExecutionType int32

const (
	ExecutionTypeOrderAccepted        ExecutionType = 2
	ExecutionTypeOrderFilled          ExecutionType = 3
	ExecutionTypeOrderReplaced        ExecutionType = 4
	ExecutionTypeOrderCancelled       ExecutionType = 5
	ExecutionTypeOrderExpired         ExecutionType = 6
	ExecutionTypeOrderRejected        ExecutionType = 7
	ExecutionTypeOrderCancelRejected  ExecutionType = 8
	ExecutionTypeSwap                 ExecutionType = 9
	ExecutionTypeDepositWithdraw      ExecutionType = 10
	ExecutionTypeOrderPartialFill     ExecutionType = 11
	ExecutionTypeBonusDepositWithdraw ExecutionType = 12
)
