package cache

import (
	"strconv"

	"github.com/gomodule/redigo/redis"
)

func Get(key string, conn *redis.Conn) (string, error) {
	return redis.String((*conn).Do("GET", key))
}

func Set(key string, value interface{}, conn *redis.Conn) bool {
	reply, err := redis.String((*conn).Do("SET", key, value))
	if reply != "OK" || err != nil {
		return false
	}
	return true
}

func Del(key string, conn *redis.Conn) error {
	_, err := (*conn).Do("DEL", key)
	return err
}

func ZADD(key string, score int, member string, conn *redis.Conn) error {
	_, err := (*conn).Do("ZADD", key, score, member)
	return err
}

func ZREM(key string, member string, conn *redis.Conn) error {
	_, err := (*conn).Do("ZREM", key, member)
	return err
}

// ZREVTOP returns the n highest scored members, best first.
func ZREVTOP(key string, n int, conn *redis.Conn) ([]string, []int, error) {
	values, err := redis.Strings((*conn).Do("ZREVRANGE", key, 0, n-1, "WITHSCORES"))
	if err != nil {
		return nil, nil, err
	}
	members := make([]string, 0, len(values)/2)
	scores := make([]int, 0, len(values)/2)
	for i := 0; i+1 < len(values); i += 2 {
		score, err := strconv.Atoi(values[i+1])
		if err != nil {
			return nil, nil, err
		}
		members = append(members, values[i])
		scores = append(scores, score)
	}
	return members, scores, nil
}
