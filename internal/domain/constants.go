package domain

// WoodForBonfire - сколько дерева нужно, чтобы разжечь костер
const WoodForBonfire uint32 = 10

// StepCost - стоимость любого действия для планировщика (все ребра графа равны)
const StepCost = 1
