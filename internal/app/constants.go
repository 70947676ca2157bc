package app

// MinPlayersToStartGame is the fewest seated players a deal accepts.
const MinPlayersToStartGame = 2
