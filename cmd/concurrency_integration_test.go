package cmd

import (
	"net/http"
	"sync"

	"manufacturing/internal/generated/servers"

	"github.com/google/uuid"
)

// concurrently runs call n times at once and returns the status codes.
func (suite *ScenariosIntegrationTestSuite) concurrently(n int, call func(i int) int) []int {
	codes := make([]int, n)
	start := make(chan struct{})

	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			codes[i] = call(i)
		}()
	}
	close(start)
	wg.Wait()

	return codes
}

func countCodes(codes []int) map[int]int {
	counts := make(map[int]int)
	for _, c := range codes {
		counts[c]++
	}
	return counts
}

// Eight placements race for 10 screws at 3 per order: three win, the rest
// are rejected whole and the item never reserves more than it holds.
func (suite *ScenariosIntegrationTestSuite) TestConcurrentPlacementsNeverOverReserve() {
	const attempts = 8
	screw := suite.createStockItem("Screw A", "component", 10)
	widget := suite.createBom("Widget", map[uuid.UUID]int{screw: 3})
	deliveryOn := suite.today().AddDate(0, 0, 7)

	codes := suite.concurrently(attempts, func(int) int {
		return suite.placeOrder(widget, 1, deliveryOn).Code
	})

	counts := countCodes(codes)
	suite.Equal(10/3, counts[http.StatusCreated], codes)
	suite.Equal(attempts-10/3, counts[http.StatusConflict], codes)

	var item servers.StockItem
	suite.getJSON("/api/v1/stock-items/"+screw.String(), &item)
	suite.Equal(9, item.Reserved)
	suite.LessOrEqual(item.Reserved, item.OnHand)
	suite.Equal(1, item.Available)

	var orders []servers.OrderSnapshot
	suite.getJSON("/api/v1/orders", &orders)
	suite.Len(orders, 10/3)
}

// Six orders race for the single slot of a capacity-1 center: one work
// order is admitted.
func (suite *ScenariosIntegrationTestSuite) TestConcurrentSchedulingRespectsCapacity() {
	const attempts = 6
	screw := suite.createStockItem("Screw A", "component", 10)
	widget := suite.createBom("Widget", map[uuid.UUID]int{screw: 1})
	press := suite.createWorkCenter("Press-1", "60", 1)

	orderIDs := make([]uuid.UUID, attempts)
	for i := range orderIDs {
		orderIDs[i] = suite.createdID(suite.placeOrder(widget, 1, suite.today().AddDate(0, 0, 7)))
	}

	codes := suite.concurrently(attempts, func(i int) int {
		return suite.scheduleWorkOrder(orderIDs[i], press, 1).Code
	})

	counts := countCodes(codes)
	suite.Equal(1, counts[http.StatusCreated], codes)
	suite.Equal(attempts-1, counts[http.StatusConflict], codes)

	var load servers.WorkCenterLoad
	suite.getJSON("/api/v1/work-centers/"+press.String()+"/load", &load)
	suite.Equal(1, load.Load)
	suite.LessOrEqual(load.Load, load.Capacity)
}
