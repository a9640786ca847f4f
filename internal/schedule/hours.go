package schedule

// ResolveEffectiveHours выбирает часы, действующие для сотрудника в конкретный
// день: личное переопределение, если оно задано и включено, иначе часы
// бизнеса по умолчанию.
//
// nil означает "сотрудник в этот день не работает" (выбранные часы выключены
// или не содержат интервалов) - вызывающий код пропускает такого сотрудника
// целиком, не считая для него пустой набор слотов.
func ResolveEffectiveHours(override *DayHours, businessDefault DayHours) *DayHours {
	chosen := businessDefault
	if override != nil && override.Enabled {
		chosen = *override
	}

	if !chosen.Enabled || len(chosen.Intervals) == 0 {
		return nil
	}

	return &chosen
}
