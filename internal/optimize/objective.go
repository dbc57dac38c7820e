package optimize

// profitObjective attaches the single maximization objective:
//
//	profit = Σ_t sale·Produce[t] − Σ_{o,t} price[o,t]·Buy[o,t]
//	       − Σ_{o,t} storage·Stock[o,t]
//
// No discounting and no transaction fees; the scenario parameters are the
// only cost inputs.
func (b *builder) profitObjective() {
	p := b.scn.Params
	terms := make([]Term, 0, len(b.m.Periods)*(1+2*len(b.scn.Oils)))

	for _, t := range b.m.Periods {
		terms = append(terms, Term{p.ProductSalesPrice, b.m.Produce(t)})
	}
	for _, o := range b.scn.Oils {
		for _, t := range b.m.Periods {
			price, _ := b.scn.Prices.Price(o.ID, t) // covered, validated at Build entry
			terms = append(terms, Term{-price, b.m.Buy(o.ID, t)})
			terms = append(terms, Term{-p.StorageCostPerTon, b.m.Stock(o.ID, t)})
		}
	}

	b.m.objective = Objective{Maximize: true, Terms: terms}
}
