// Package balance считает итоги "вы должны / вам должны" по списку
// расходов. Сервер балансов не отдает, поэтому считаем на клиенте.
package balance

import "github.com/iudanet/splitbill/pkg/api"

// Summary представляет итоги текущего пользователя
type Summary struct {
	YouOwe     float64 // сумма ваших долей в чужих расходах
	YouAreOwed float64 // сумма чужих долей в ваших расходах
}

// Net возвращает сальдо: положительное — вам должны
func (s Summary) Net() float64 {
	return s.YouAreOwed - s.YouOwe
}

// Compute считает баланс пользователя userID.
// Каждый расход делится поровну между участниками split_between;
// плательщику зачитываются доли остальных участников. Расходы без
// участников или с неположительной суммой пропускаются.
func Compute(userID int64, expenses []api.Expense) Summary {
	var sum Summary

	for _, e := range expenses {
		n := len(e.SplitBetween)
		if n == 0 || e.Amount <= 0 {
			continue
		}

		share := e.Amount / float64(n)

		participant := false
		for _, p := range e.SplitBetween {
			if p.ID == userID {
				participant = true
				break
			}
		}

		switch {
		case e.PaidBy.ID == userID:
			// Своя доля не долг: считаем только доли остальных
			others := n
			if participant {
				others = n - 1
			}
			sum.YouAreOwed += share * float64(others)
		case participant:
			sum.YouOwe += share
		}
	}

	return sum
}
