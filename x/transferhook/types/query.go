package types

import (
	"context"

	"github.com/Zanda256/interest-bearing-vault/types/accountmeta"
	"github.com/Zanda256/interest-bearing-vault/types/address"
)

// QueryServer is the transferhook module's query service.
type QueryServer interface {
	WhitelistEntry(context.Context, *QueryWhitelistEntryRequest) (*QueryWhitelistEntryResponse, error)
	IsWhitelisted(context.Context, *QueryIsWhitelistedRequest) (*QueryIsWhitelistedResponse, error)
	ExtraAccountMetas(context.Context, *QueryExtraAccountMetasRequest) (*QueryExtraAccountMetasResponse, error)
}

type QueryWhitelistEntryRequest struct {
	Mint    address.Address `json:"mint"`
	Address address.Address `json:"address"`
}

type QueryWhitelistEntryResponse struct {
	EntryAddress address.Address `json:"entry_address"`
	Entry        WhitelistEntry  `json:"entry"`
}

type QueryIsWhitelistedRequest struct {
	Mint    address.Address `json:"mint"`
	Address address.Address `json:"address"`
}

type QueryIsWhitelistedResponse struct {
	Whitelisted bool `json:"whitelisted"`
}

type QueryExtraAccountMetasRequest struct {
	Mint address.Address `json:"mint"`
}

type QueryExtraAccountMetasResponse struct {
	MetaList address.Address  `json:"meta_list"`
	Metas    accountmeta.List `json:"metas"`
}
