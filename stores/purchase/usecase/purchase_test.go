package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	bCtx "github.com/x-xyz/escrow/base/ctx"
	"github.com/x-xyz/escrow/domain"
	"github.com/x-xyz/escrow/domain/config"
	cfgMocks "github.com/x-xyz/escrow/domain/config/mocks"
	"github.com/x-xyz/escrow/domain/ledger"
	domainMocks "github.com/x-xyz/escrow/domain/mocks"
	ledgerMocks "github.com/x-xyz/escrow/domain/ledger/mocks"
	"github.com/x-xyz/escrow/domain/listing"
	listingMocks "github.com/x-xyz/escrow/domain/listing/mocks"
	"github.com/x-xyz/escrow/domain/purchase"
	"github.com/x-xyz/escrow/domain/purchase/mocks"
)

var (
	owner    = domain.AccountId("alice.near")
	buyer    = domain.AccountId("bob.near")
	creator  = domain.AccountId("creator.near")
	platform = domain.AccountId("market.near")
	charity  = domain.AccountId("charity.near")

	purchaseId = domain.PurchaseId("p1")
	now        = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	errDB      = errors.New("db down")
)

type purchaseTestSuite struct {
	suite.Suite

	ctx         bCtx.Ctx
	repo        *mocks.Repo
	listingRepo *listingMocks.Repo
	config      *cfgMocks.UseCase
	ledger      *ledgerMocks.UseCase
	scheduler   *mocks.Scheduler
	tx          *domainMocks.Transactor
	uc          purchase.UseCase
}

func (s *purchaseTestSuite) SetupTest() {
	timeNow = func() time.Time { return now }
	newId = func() domain.PurchaseId { return purchaseId }
	s.ctx = bCtx.Background()
	s.repo = &mocks.Repo{}
	s.listingRepo = &listingMocks.Repo{}
	s.config = &cfgMocks.UseCase{}
	s.ledger = &ledgerMocks.UseCase{}
	s.scheduler = &mocks.Scheduler{}
	s.tx = &domainMocks.Transactor{}
	s.tx.On("RunWithTransaction", mock.Anything, mock.Anything).Return(func(c bCtx.Ctx, run func(bCtx.Ctx) error) error {
		return run(c)
	}).Maybe()
	s.config.On("Get", mock.Anything).Return(&config.Marketplace{
		Owner:         platform,
		RoyaltyBps:    250,
		Charity:       charity,
		MaxRecipients: 10,
	}, nil).Maybe()
	s.uc = New(&PurchaseUseCaseCfg{
		Repo:        s.repo,
		ListingRepo: s.listingRepo,
		Config:      s.config,
		Ledger:      s.ledger,
		Scheduler:   s.scheduler,
		Tx:          s.tx,
	})
}

func (s *purchaseTestSuite) TearDownTest() {
	timeNow = time.Now
	s.repo.AssertExpectations(s.T())
	s.listingRepo.AssertExpectations(s.T())
	s.ledger.AssertExpectations(s.T())
	s.scheduler.AssertExpectations(s.T())
}

func (s *purchaseTestSuite) listing() *listing.Listing {
	return &listing.Listing{
		OwnerId:    owner,
		ApprovalId: 3,
		AssetId:    "token-1",
		Price:      domain.NewAmount(10000),
		Donation:   domain.NewAmount(500),
	}
}

func inState(state purchase.State) interface{} {
	return mock.MatchedBy(func(p purchase.Patchable) bool {
		return p.State != nil && *p.State == state
	})
}

func settledAs(state purchase.State, reason string, settled domain.Amount) interface{} {
	return mock.MatchedBy(func(p purchase.Patchable) bool {
		if p.State == nil || *p.State != state || p.Settled == nil || *p.Settled != settled {
			return false
		}
		if reason == "" {
			return p.Reason == nil
		}
		return p.Reason != nil && *p.Reason == reason
	})
}

// buy runs a successful Buy and returns the continuation handed to the
// scheduler.
func (s *purchaseTestSuite) buy(deposit uint64) purchase.Continuation {
	l := s.listing()
	var cont purchase.Continuation
	s.expectCollect(domain.NewAmount(deposit), domain.NewAmount(deposit))
	s.listingRepo.On("FindOne", mock.Anything, listing.Id{AssetId: "token-1"}).Return(l, nil).Once()
	s.listingRepo.On("Reserve", mock.Anything, l.Snapshot()).Return(l, nil).Once()
	s.repo.On("Insert", mock.Anything, mock.AnythingOfType("*purchase.Purchase")).Return(nil).Once()
	s.scheduler.On("Dispatch", mock.Anything, purchase.TransferRequest{
		PurchaseId:    purchaseId,
		Receiver:      buyer,
		AssetId:       "token-1",
		ApprovalId:    3,
		Balance:       domain.NewAmount(10000),
		MaxRecipients: 10,
	}, mock.Anything).Run(func(args mock.Arguments) {
		cont = args.Get(2).(purchase.Continuation)
	}).Return(nil).Once()

	p, err := s.uc.Buy(s.ctx, domain.DirectCaller(buyer), "token-1", domain.NewAmount(deposit))
	s.Require().NoError(err)
	s.Equal(purchase.StateTransferPending, p.State)
	s.Equal(buyer, p.Buyer)
	s.Equal(domain.NewAmount(deposit), p.Deposit)
	s.Require().NotNil(cont)
	return cont
}

func (s *purchaseTestSuite) expectCollect(claimed, collected domain.Amount) {
	s.ledger.On("Collect", mock.Anything, purchaseId, buyer, claimed).Return(&ledger.Entry{Amount: collected, Status: ledger.StatusCollected}, nil).Once()
}

func (s *purchaseTestSuite) expectClaim() {
	s.repo.On("Transition", mock.Anything, purchase.Id{Id: purchaseId}, purchase.StateTransferPending, inState(purchase.StateResolving)).Return(nil).Once()
}

func (s *purchaseTestSuite) expectFinal(state purchase.State, reason string, settled domain.Amount) {
	s.repo.On("Transition", mock.Anything, purchase.Id{Id: purchaseId}, purchase.StateResolving, settledAs(state, reason, settled)).Return(nil).Once()
}

func (s *purchaseTestSuite) expectPay(recipient domain.AccountId, amount uint64, kind ledger.Kind) {
	s.ledger.On("Pay", mock.Anything, purchaseId, recipient, domain.NewAmount(amount), kind).Return(&ledger.Entry{}, nil).Once()
}

func (s *purchaseTestSuite) expectHold(recipient domain.AccountId, amount uint64, reason string) {
	s.ledger.On("Hold", mock.Anything, purchaseId, recipient, domain.NewAmount(amount), reason).Return(&ledger.Entry{}, nil).Once()
}

func (s *purchaseTestSuite) TestBuyRejected() {
	cases := []struct {
		name    string
		caller  domain.Caller
		deposit uint64
		setup   func()
		wantErr error
	}{
		{
			name:    "no caller",
			deposit: 10000,
			setup:   func() {},
			wantErr: domain.ErrUnauthorized,
		},
		{
			name:    "not listed",
			caller:  domain.DirectCaller(buyer),
			deposit: 10000,
			setup: func() {
				s.listingRepo.On("FindOne", mock.Anything, listing.Id{AssetId: "token-1"}).Return(nil, domain.ErrNotFound).Once()
			},
			wantErr: domain.ErrNotFound,
		},
		{
			// the listing is left untouched
			name:    "deposit below price",
			caller:  domain.DirectCaller(buyer),
			deposit: 9999,
			setup: func() {
				s.listingRepo.On("FindOne", mock.Anything, listing.Id{AssetId: "token-1"}).Return(s.listing(), nil).Once()
			},
			wantErr: domain.ErrInsufficientPayment,
		},
		{
			name:    "reserved by someone else",
			caller:  domain.DirectCaller(buyer),
			deposit: 10000,
			setup: func() {
				l := s.listing()
				s.listingRepo.On("FindOne", mock.Anything, listing.Id{AssetId: "token-1"}).Return(l, nil).Once()
				s.expectCollect(domain.NewAmount(10000), domain.NewAmount(10000))
				s.listingRepo.On("Reserve", mock.Anything, l.Snapshot()).Return(nil, domain.ErrNotFound).Once()
				s.expectPay(buyer, 10000, ledger.KindRefund)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, c := range cases {
		s.Run(c.name, func() {
			s.SetupTest()
			c.setup()
			_, err := s.uc.Buy(s.ctx, c.caller, "token-1", domain.NewAmount(c.deposit))
			s.ErrorIs(err, c.wantErr)
			s.listingRepo.AssertExpectations(s.T())
			s.repo.AssertExpectations(s.T())
			s.ledger.AssertExpectations(s.T())
		})
	}
}

func (s *purchaseTestSuite) TestBuyRejectsUncollectedDeposit() {
	l := s.listing()
	claimed := domain.MustParseAmount("1000000000000000000000000010000")
	s.listingRepo.On("FindOne", mock.Anything, l.ToId()).Return(l, nil).Once()
	s.expectCollect(claimed, domain.NewAmount(10000))
	// what was taken goes back, nothing more
	s.expectPay(buyer, 10000, ledger.KindRefund)

	_, err := s.uc.Buy(s.ctx, domain.DirectCaller(buyer), "token-1", claimed)
	s.ErrorIs(err, domain.ErrInsufficientPayment)
	s.listingRepo.AssertNotCalled(s.T(), "Reserve", mock.Anything, mock.Anything)
	s.repo.AssertNotCalled(s.T(), "Insert", mock.Anything, mock.Anything)
}

func (s *purchaseTestSuite) TestBuyCollectFails() {
	l := s.listing()
	errPayment := errors.New("payment down")
	s.listingRepo.On("FindOne", mock.Anything, l.ToId()).Return(l, nil).Once()
	s.ledger.On("Collect", mock.Anything, purchaseId, buyer, domain.NewAmount(10000)).Return(&ledger.Entry{Status: ledger.StatusFailed}, errPayment).Once()

	_, err := s.uc.Buy(s.ctx, domain.DirectCaller(buyer), "token-1", domain.NewAmount(10000))
	s.ErrorIs(err, errPayment)
	s.listingRepo.AssertNotCalled(s.T(), "Reserve", mock.Anything, mock.Anything)
	s.ledger.AssertNotCalled(s.T(), "Pay", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *purchaseTestSuite) TestBuyTwiceSecondFails() {
	s.buy(10000)

	s.listingRepo.On("FindOne", mock.Anything, listing.Id{AssetId: "token-1"}).Return(nil, domain.ErrNotFound).Once()
	_, err := s.uc.Buy(s.ctx, domain.DirectCaller("carol.near"), "token-1", domain.NewAmount(10000))
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *purchaseTestSuite) TestBuyCompensatesInsertFailure() {
	l := s.listing()
	s.listingRepo.On("FindOne", mock.Anything, l.ToId()).Return(l, nil).Once()
	s.expectCollect(domain.NewAmount(10500), domain.NewAmount(10500))
	s.listingRepo.On("Reserve", mock.Anything, l.Snapshot()).Return(l, nil).Once()
	s.repo.On("Insert", mock.Anything, mock.Anything).Return(errDB).Once()
	s.expectPay(buyer, 10500, ledger.KindRefund)

	_, err := s.uc.Buy(s.ctx, domain.DirectCaller(buyer), "token-1", domain.NewAmount(10500))
	s.ErrorIs(err, errDB)
	// the reservation is rolled back with the transaction
	s.tx.AssertNumberOfCalls(s.T(), "RunWithTransaction", 1)
	s.listingRepo.AssertNotCalled(s.T(), "Upsert", mock.Anything, mock.Anything)
}

func (s *purchaseTestSuite) TestBuyCompensatesDispatchFailure() {
	l := s.listing()
	errFull := errors.New("queue full")
	s.listingRepo.On("FindOne", mock.Anything, l.ToId()).Return(l, nil).Once()
	s.expectCollect(domain.NewAmount(10000), domain.NewAmount(10000))
	s.listingRepo.On("Reserve", mock.Anything, l.Snapshot()).Return(l, nil).Once()
	s.repo.On("Insert", mock.Anything, mock.Anything).Return(nil).Once()
	s.scheduler.On("Dispatch", mock.Anything, mock.Anything, mock.Anything).Return(errFull).Once()
	s.repo.On("Remove", mock.Anything, purchase.Id{Id: purchaseId}).Return(nil).Once()
	s.listingRepo.On("Upsert", mock.Anything, l).Return(nil).Once()
	s.expectPay(buyer, 10000, ledger.KindRefund)

	_, err := s.uc.Buy(s.ctx, domain.DirectCaller(buyer), "token-1", domain.NewAmount(10000))
	s.ErrorIs(err, errFull)
}

func (s *purchaseTestSuite) TestBuyDispatchFailureLeftPendingWhenUnwindFails() {
	l := s.listing()
	errFull := errors.New("queue full")
	s.listingRepo.On("FindOne", mock.Anything, l.ToId()).Return(l, nil).Once()
	s.expectCollect(domain.NewAmount(10000), domain.NewAmount(10000))
	s.listingRepo.On("Reserve", mock.Anything, l.Snapshot()).Return(l, nil).Once()
	s.repo.On("Insert", mock.Anything, mock.Anything).Return(nil).Once()
	s.scheduler.On("Dispatch", mock.Anything, mock.Anything, mock.Anything).Return(errFull).Once()
	s.repo.On("Remove", mock.Anything, purchase.Id{Id: purchaseId}).Return(errDB).Once()

	_, err := s.uc.Buy(s.ctx, domain.DirectCaller(buyer), "token-1", domain.NewAmount(10000))
	s.ErrorIs(err, errFull)
	// the deposit is held once the purchase expires
	s.ledger.AssertNotCalled(s.T(), "Pay", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *purchaseTestSuite) TestResolveSettles() {
	cont := s.buy(10000)

	s.expectClaim()
	s.expectPay(owner, 9250, ledger.KindSeller)
	s.expectPay(platform, 250, ledger.KindTreasury)
	s.expectPay(charity, 500, ledger.KindCharity)
	s.expectFinal(purchase.StateSettled, "", domain.NewAmount(10000))

	cont(s.ctx, purchase.Outcome{Value: []byte(`{"payout":{"alice.near":"10000"}}`)})
}

func (s *purchaseTestSuite) TestResolveSettlesWithRoyaltyAndDust() {
	cont := s.buy(10000)

	s.expectClaim()
	s.expectPay(owner, 8150, ledger.KindSeller)
	s.expectPay(platform, 250, ledger.KindTreasury)
	s.expectPay(charity, 500, ledger.KindCharity)
	s.expectPay(creator, 1000, ledger.KindRoyalty)
	s.expectHold("", 100, purchase.ReasonUnallocated)
	s.expectFinal(purchase.StateSettled, "", domain.NewAmount(10000))

	cont(s.ctx, purchase.Outcome{Value: []byte(`{"payout":{"alice.near":"8900","creator.near":"1000"}}`)})
}

func (s *purchaseTestSuite) TestResolveReturnsOverpayment() {
	cont := s.buy(10500)

	s.expectClaim()
	s.expectPay(owner, 9250, ledger.KindSeller)
	s.expectPay(platform, 250, ledger.KindTreasury)
	s.expectPay(charity, 500, ledger.KindCharity)
	s.expectPay(buyer, 500, ledger.KindOverpayment)
	s.expectFinal(purchase.StateSettled, "", domain.NewAmount(10000))

	cont(s.ctx, purchase.Outcome{Value: []byte(`{"payout":{"alice.near":"10000"}}`)})
}

func (s *purchaseTestSuite) TestResolveLegFailureStillPaysOthers() {
	cont := s.buy(10000)

	s.expectClaim()
	s.expectPay(owner, 9250, ledger.KindSeller)
	s.ledger.On("Pay", mock.Anything, purchaseId, platform, domain.NewAmount(250), ledger.KindTreasury).Return(&ledger.Entry{Status: ledger.StatusFailed}, errors.New("payment down")).Once()
	s.expectPay(charity, 500, ledger.KindCharity)
	s.expectFinal(purchase.StateSettled, purchase.ReasonLegFailed, domain.NewAmount(10000))

	cont(s.ctx, purchase.Outcome{Value: []byte(`{"payout":{"alice.near":"10000"}}`)})
}

func (s *purchaseTestSuite) TestResolveTransferFailedRefunds() {
	cont := s.buy(10500)

	// the listing is not restored
	s.expectClaim()
	s.expectPay(buyer, 10000, ledger.KindRefund)
	s.expectPay(buyer, 500, ledger.KindOverpayment)
	s.expectFinal(purchase.StateRefunded, purchase.ReasonTransferFailed, domain.ZeroAmount)

	cont(s.ctx, purchase.Outcome{Err: errors.New("registry timeout")})
}

func (s *purchaseTestSuite) TestResolveUntrustedRefunds() {
	cases := []struct {
		name  string
		value string
	}{
		{name: "diff 200", value: `{"payout":{"alice.near":"9000","creator.near":"800"}}`},
		{name: "sum above price", value: `{"payout":{"alice.near":"10001"}}`},
		{name: "not json", value: `ok`},
		{name: "bad amount", value: `{"payout":{"alice.near":"ten"}}`},
	}

	for _, c := range cases {
		s.Run(c.name, func() {
			s.SetupTest()
			cont := s.buy(10000)

			s.expectClaim()
			s.expectPay(buyer, 10000, ledger.KindRefund)
			s.expectHold(owner, 10000, purchase.ReasonSellerUnpaid)
			s.expectFinal(purchase.StateRefunded, purchase.ReasonPayoutUntrusted, domain.ZeroAmount)

			cont(s.ctx, purchase.Outcome{Value: []byte(c.value)})
			s.TearDownTest()
		})
	}
}

func (s *purchaseTestSuite) TestResolveTimedOutGetsStuck() {
	cont := s.buy(10500)

	s.expectClaim()
	s.expectHold(buyer, 10500, purchase.ReasonTransferUnknown)
	s.expectFinal(purchase.StateStuck, purchase.ReasonTransferUnknown, domain.ZeroAmount)

	cont(s.ctx, purchase.Outcome{Err: context.DeadlineExceeded, TimedOut: true})
	s.ledger.AssertNotCalled(s.T(), "Pay", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *purchaseTestSuite) TestResolveInconsistentGetsStuck() {
	cont := s.buy(10300)

	s.expectClaim()
	s.expectHold(owner, 10000, purchase.ReasonInternalInconsistency)
	s.expectHold(buyer, 300, purchase.ReasonInternalInconsistency)
	s.expectFinal(purchase.StateStuck, purchase.ReasonInternalInconsistency, domain.ZeroAmount)

	cont(s.ctx, purchase.Outcome{Value: []byte(`{"payout":{"alice.near":"700","creator.near":"9300"}}`)})
	s.ledger.AssertNotCalled(s.T(), "Pay", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *purchaseTestSuite) TestResolveRunsOnce() {
	cont := s.buy(10000)

	s.expectClaim()
	s.expectPay(buyer, 10000, ledger.KindRefund)
	s.expectFinal(purchase.StateRefunded, purchase.ReasonTransferFailed, domain.ZeroAmount)
	cont(s.ctx, purchase.Outcome{Err: errors.New("registry down")})

	s.repo.On("Transition", mock.Anything, purchase.Id{Id: purchaseId}, purchase.StateTransferPending, mock.Anything).Return(domain.ErrNotFound).Once()
	cont(s.ctx, purchase.Outcome{Value: []byte(`{"payout":{"alice.near":"10000"}}`)})
}

func (s *purchaseTestSuite) TestResolveClaimErrorLeavesPending() {
	cont := s.buy(10000)

	s.repo.On("Transition", mock.Anything, purchase.Id{Id: purchaseId}, purchase.StateTransferPending, mock.Anything).Return(errDB).Once()
	cont(s.ctx, purchase.Outcome{Value: []byte(`{"payout":{"alice.near":"10000"}}`)})
}

func (s *purchaseTestSuite) TestReconcile() {
	expired := []*purchase.Purchase{
		{Id: "p1", Buyer: buyer, Listing: *s.listing(), Deposit: domain.NewAmount(10000), State: purchase.StateTransferPending},
		{Id: "p2", Buyer: buyer, Listing: *s.listing(), Deposit: domain.NewAmount(12000), State: purchase.StateTransferPending},
	}
	s.repo.On("FindAll", mock.Anything, mock.Anything, mock.Anything).Return(expired, nil).Once()
	s.repo.On("Transition", mock.Anything, purchase.Id{Id: "p1"}, purchase.StateTransferPending, inState(purchase.StateStuck)).Return(nil).Once()
	// resolved in the meantime
	s.repo.On("Transition", mock.Anything, purchase.Id{Id: "p2"}, purchase.StateTransferPending, inState(purchase.StateStuck)).Return(domain.ErrNotFound).Once()
	s.ledger.On("Hold", mock.Anything, domain.PurchaseId("p1"), buyer, domain.NewAmount(10000), purchase.ReasonTransferExpired).Return(&ledger.Entry{}, nil).Once()

	moved, err := s.uc.Reconcile(s.ctx, time.Minute)
	s.Require().NoError(err)
	s.Equal(1, moved)
}

func (s *purchaseTestSuite) TestReconcileFindFails() {
	s.repo.On("FindAll", mock.Anything, mock.Anything, mock.Anything).Return(nil, errDB).Once()

	_, err := s.uc.Reconcile(s.ctx, time.Minute)
	s.ErrorIs(err, errDB)
}

func TestPurchaseUseCase(t *testing.T) {
	suite.Run(t, new(purchaseTestSuite))
}
