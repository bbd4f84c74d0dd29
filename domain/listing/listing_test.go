package listing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/x-xyz/escrow/domain"
)

func TestParseListAction(t *testing.T) {
	cases := []struct {
		name    string
		msg     string
		want    ListAction
		wantErr error
	}{
		{
			name: "price and donation",
			msg:  `{"price":"10000","donation":"500"}`,
			want: ListAction{Price: domain.NewAmount(10000), Donation: domain.NewAmount(500)},
		},
		{
			name: "zero donation",
			msg:  `{"price":"10000","donation":"0"}`,
			want: ListAction{Price: domain.NewAmount(10000), Donation: domain.ZeroAmount},
		},
		{
			name: "donation equals price",
			msg:  `{"price":"10000","donation":"10000"}`,
			want: ListAction{Price: domain.NewAmount(10000), Donation: domain.NewAmount(10000)},
		},
		{
			name:    "donation exceeds price",
			msg:     `{"price":"10000","donation":"10001"}`,
			wantErr: domain.ErrMalformedRequest,
		},
		{
			name:    "not json",
			msg:     `price=10000`,
			wantErr: domain.ErrMalformedRequest,
		},
		{
			name:    "numeric instead of string",
			msg:     `{"price":10000,"donation":"0"}`,
			wantErr: domain.ErrMalformedRequest,
		},
		{
			name:    "missing donation",
			msg:     `{"price":"10000"}`,
			wantErr: domain.ErrMalformedRequest,
		},
		{
			name:    "negative price",
			msg:     `{"price":"-1","donation":"0"}`,
			wantErr: domain.ErrMalformedRequest,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := require.New(t)
			got, err := ParseListAction(c.msg)
			if c.wantErr != nil {
				req.True(errors.Is(err, c.wantErr), "got %v", err)
				return
			}
			req.NoError(err)
			req.Equal(c.want, got)
		})
	}
}

func TestSnapshot(t *testing.T) {
	l := Listing{
		OwnerId:    "alice.near",
		ApprovalId: 7,
		AssetId:    "token-1",
		Price:      domain.NewAmount(10000),
		Donation:   domain.NewAmount(500),
	}
	require.Equal(t, Snapshot{
		AssetId:    "token-1",
		OwnerId:    "alice.near",
		ApprovalId: 7,
		Price:      domain.NewAmount(10000),
		Donation:   domain.NewAmount(500),
	}, l.Snapshot())
	require.Equal(t, Id{AssetId: "token-1"}, l.ToId())
}

func TestGetFindAllOptions(t *testing.T) {
	req := require.New(t)
	opts, err := GetFindAllOptions(WithOwner("alice.near"), WithPagination(10, 20))
	req.NoError(err)
	req.Equal(domain.AccountId("alice.near"), *opts.OwnerId)
	req.Equal(int32(10), *opts.Offset)
	req.Equal(int32(20), *opts.Limit)

	_, err = GetFindAllOptions(WithPagination(-1, 20))
	req.ErrorIs(err, domain.ErrBadParamInput)
}
